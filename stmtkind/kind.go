// Package stmtkind holds the closed enumeration of statement kinds the
// splitter can tag a range with.
package stmtkind

// Kind identifies the syntactic category of a top-level statement. Unknown
// is the sentinel used when no statement definition matched (salvage
// ranges).
type Kind int

const (
	Unknown Kind = iota

	SelectStmt
	InsertStmt
	UpdateStmt
	DeleteStmt
	MergeStmt
	AlterTableStmt
	CreateStmt
	CreateTableAsStmt
	ViewStmt
	IndexStmt
	CreateFunctionStmt
	AlterFunctionStmt
	DoStmt
	RuleStmt
	CreateTrigStmt
	TransactionStmt
	VariableSetStmt
	VariableShowStmt
	DiscardStmt
	GrantStmt
	DropStmt
	TruncateStmt
	CommentStmt
	FetchStmt
	DeclareCursorStmt
	PrepareStmt
	ExecuteStmt
	DeallocateStmt
	ExplainStmt
	VacuumStmt
	CopyStmt
	LockStmt
	ConstraintsSetStmt
	ReindexStmt
	CheckPointStmt
	CreateSchemaStmt
	CreateDomainStmt
	CreateEnumStmt
	CreateRangeStmt
	CompositeTypeStmt
	CreateCastStmt
	CreateOpClassStmt
	CreateOpFamilyStmt
	AlterOpFamilyStmt
	CreatePolicyStmt
	AlterPolicyStmt
	CreateExtensionStmt
	AlterExtensionStmt
	CreatePublicationStmt
	AlterPublicationStmt
	CreateSubscriptionStmt
	AlterSubscriptionStmt
	DropSubscriptionStmt
	CreateFdwStmt
	AlterFdwStmt
	CreateForeignServerStmt
	AlterForeignServerStmt
	CreateUserMappingStmt
	AlterUserMappingStmt
	DropUserMappingStmt
	CreateForeignTableStmt
	ImportForeignSchemaStmt
	CreateEventTrigStmt
	AlterEventTrigStmt
	RefreshMatViewStmt
	AlterSystemStmt
	CreateTransformStmt
	CreateAmStmt
	CreateStatsStmt
	AlterStatsStmt
	AlterCollationStmt
	CallStmt
	CreateRoleStmt
	AlterRoleStmt
	DropRoleStmt
	CreateTableSpaceStmt
	DropTableSpaceStmt
	AlterOperatorStmt
	AlterTypeStmt
	DropOwnedStmt
	ReassignOwnedStmt
	AlterOwnerStmt
	AlterObjectSchemaStmt
	RenameStmt
	SecLabelStmt
	CreatePlangStmt
	CreateConversionStmt
	LoadStmt
	NotifyStmt
	ListenStmt
	UnlistenStmt
	ClusterStmt
	AlterDomainStmt
	AlterDatabaseStmt
	AlterDatabaseRefreshCollStmt
	AlterDatabaseSetStmt
	CreatedbStmt
	DropdbStmt
	AlterDefaultPrivilegesStmt
	DefineStmt
	AlterSeqStmt
	CreateSeqStmt
)

var names = map[Kind]string{
	Unknown:                      "Unknown",
	SelectStmt:                   "SelectStmt",
	InsertStmt:                   "InsertStmt",
	UpdateStmt:                   "UpdateStmt",
	DeleteStmt:                   "DeleteStmt",
	MergeStmt:                    "MergeStmt",
	AlterTableStmt:               "AlterTableStmt",
	CreateStmt:                   "CreateStmt",
	CreateTableAsStmt:            "CreateTableAsStmt",
	ViewStmt:                     "ViewStmt",
	IndexStmt:                    "IndexStmt",
	CreateFunctionStmt:           "CreateFunctionStmt",
	AlterFunctionStmt:            "AlterFunctionStmt",
	DoStmt:                       "DoStmt",
	RuleStmt:                     "RuleStmt",
	CreateTrigStmt:               "CreateTrigStmt",
	TransactionStmt:              "TransactionStmt",
	VariableSetStmt:              "VariableSetStmt",
	VariableShowStmt:             "VariableShowStmt",
	DiscardStmt:                  "DiscardStmt",
	GrantStmt:                    "GrantStmt",
	DropStmt:                     "DropStmt",
	TruncateStmt:                 "TruncateStmt",
	CommentStmt:                  "CommentStmt",
	FetchStmt:                    "FetchStmt",
	DeclareCursorStmt:            "DeclareCursorStmt",
	PrepareStmt:                  "PrepareStmt",
	ExecuteStmt:                  "ExecuteStmt",
	DeallocateStmt:               "DeallocateStmt",
	ExplainStmt:                  "ExplainStmt",
	VacuumStmt:                   "VacuumStmt",
	CopyStmt:                     "CopyStmt",
	LockStmt:                     "LockStmt",
	ConstraintsSetStmt:           "ConstraintsSetStmt",
	ReindexStmt:                  "ReindexStmt",
	CheckPointStmt:               "CheckPointStmt",
	CreateSchemaStmt:             "CreateSchemaStmt",
	CreateDomainStmt:             "CreateDomainStmt",
	CreateEnumStmt:               "CreateEnumStmt",
	CreateRangeStmt:              "CreateRangeStmt",
	CompositeTypeStmt:            "CompositeTypeStmt",
	CreateCastStmt:               "CreateCastStmt",
	CreateOpClassStmt:            "CreateOpClassStmt",
	CreateOpFamilyStmt:           "CreateOpFamilyStmt",
	AlterOpFamilyStmt:            "AlterOpFamilyStmt",
	CreatePolicyStmt:             "CreatePolicyStmt",
	AlterPolicyStmt:              "AlterPolicyStmt",
	CreateExtensionStmt:          "CreateExtensionStmt",
	AlterExtensionStmt:           "AlterExtensionStmt",
	CreatePublicationStmt:        "CreatePublicationStmt",
	AlterPublicationStmt:         "AlterPublicationStmt",
	CreateSubscriptionStmt:       "CreateSubscriptionStmt",
	AlterSubscriptionStmt:        "AlterSubscriptionStmt",
	DropSubscriptionStmt:         "DropSubscriptionStmt",
	CreateFdwStmt:                "CreateFdwStmt",
	AlterFdwStmt:                 "AlterFdwStmt",
	CreateForeignServerStmt:      "CreateForeignServerStmt",
	AlterForeignServerStmt:       "AlterForeignServerStmt",
	CreateUserMappingStmt:        "CreateUserMappingStmt",
	AlterUserMappingStmt:         "AlterUserMappingStmt",
	DropUserMappingStmt:          "DropUserMappingStmt",
	CreateForeignTableStmt:       "CreateForeignTableStmt",
	ImportForeignSchemaStmt:      "ImportForeignSchemaStmt",
	CreateEventTrigStmt:          "CreateEventTrigStmt",
	AlterEventTrigStmt:           "AlterEventTrigStmt",
	RefreshMatViewStmt:           "RefreshMatViewStmt",
	AlterSystemStmt:              "AlterSystemStmt",
	CreateTransformStmt:          "CreateTransformStmt",
	CreateAmStmt:                 "CreateAmStmt",
	CreateStatsStmt:              "CreateStatsStmt",
	AlterStatsStmt:               "AlterStatsStmt",
	AlterCollationStmt:           "AlterCollationStmt",
	CallStmt:                     "CallStmt",
	CreateRoleStmt:               "CreateRoleStmt",
	AlterRoleStmt:                "AlterRoleStmt",
	DropRoleStmt:                 "DropRoleStmt",
	CreateTableSpaceStmt:         "CreateTableSpaceStmt",
	DropTableSpaceStmt:           "DropTableSpaceStmt",
	AlterOperatorStmt:            "AlterOperatorStmt",
	AlterTypeStmt:                "AlterTypeStmt",
	DropOwnedStmt:                "DropOwnedStmt",
	ReassignOwnedStmt:            "ReassignOwnedStmt",
	AlterOwnerStmt:               "AlterOwnerStmt",
	AlterObjectSchemaStmt:        "AlterObjectSchemaStmt",
	RenameStmt:                   "RenameStmt",
	SecLabelStmt:                 "SecLabelStmt",
	CreatePlangStmt:              "CreatePlangStmt",
	CreateConversionStmt:         "CreateConversionStmt",
	LoadStmt:                     "LoadStmt",
	NotifyStmt:                   "NotifyStmt",
	ListenStmt:                   "ListenStmt",
	UnlistenStmt:                 "UnlistenStmt",
	ClusterStmt:                  "ClusterStmt",
	AlterDomainStmt:              "AlterDomainStmt",
	AlterDatabaseStmt:            "AlterDatabaseStmt",
	AlterDatabaseRefreshCollStmt: "AlterDatabaseRefreshCollStmt",
	AlterDatabaseSetStmt:         "AlterDatabaseSetStmt",
	CreatedbStmt:                 "CreatedbStmt",
	DropdbStmt:                   "DropdbStmt",
	AlterDefaultPrivilegesStmt:   "AlterDefaultPrivilegesStmt",
	DefineStmt:                   "DefineStmt",
	AlterSeqStmt:                 "AlterSeqStmt",
	CreateSeqStmt:                "CreateSeqStmt",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "Kind(?)"
}

// init panics if any declared Kind lacks a name entry, the same
// completeness-check idiom the donor project's tokentype.go uses for its
// own TokenType description table.
func init() {
	for k := Unknown; k <= CreateSeqStmt; k++ {
		if _, ok := names[k]; !ok {
			panic("stmtkind: missing name for kind")
		}
	}
}
