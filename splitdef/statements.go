package splitdef

import (
	"github.com/pgsql-ls/core/stmtkind"
	"github.com/pgsql-ls/core/token"
)

// statementDefinitions is the concrete grammar-sketch table, grounded
// statement-by-statement on the STATEMENT_DEFINITIONS table of the original
// splitter this module's semantics were ported from. Duplicate definitions
// under the same anchor are legal: they are alternative productions (e.g.
// CREATE AGGREGATE vs CREATE OPERATOR vs CREATE TYPE, all anchored at
// Create).
func statementDefinitions() []StatementDefinition {
	var defs []StatementDefinition
	add := func(d StatementDefinition) { defs = append(defs, d) }

	// --- SELECT / DML -------------------------------------------------
	add(New(stmtkind.SelectStmt, token.Select).AnyToken().Build())

	add(New(stmtkind.InsertStmt, token.Insert).Required(token.Into).AnyTokens().
		Prohibit(stmtkind.SelectStmt).Build())

	add(New(stmtkind.UpdateStmt, token.Update).AnyTokens().Build())

	add(New(stmtkind.DeleteStmt, token.Delete).Required(token.From).AnyTokens().Build())

	add(New(stmtkind.MergeStmt, token.Merge).Required(token.Into).AnyTokens().Build())

	// --- TABLE DDL ------------------------------------------------------
	add(New(stmtkind.CreateStmt, token.Create).
		AnyTokens(token.Global, token.Local, token.Temporary, token.Temp, token.Unlogged).
		Required(token.Table).
		OptionalIfNotExistsGroup().
		OptionalSchemaNameGroup().
		Required(token.Ident).Build())

	add(New(stmtkind.CreateTableAsStmt, token.Create).
		Required(token.Materialized).Required(token.View).
		OptionalIfNotExistsGroup().
		OptionalSchemaNameGroup().
		Required(token.Ident).
		AnyTokens().
		Required(token.As).
		Prohibit(stmtkind.SelectStmt).Build())
	add(New(stmtkind.CreateTableAsStmt, token.Create).
		AnyTokens(token.Global, token.Local, token.Temporary, token.Temp).
		Required(token.Table).
		OptionalIfNotExistsGroup().
		OptionalSchemaNameGroup().
		Required(token.Ident).
		AnyTokens().
		Required(token.As).
		AnyToken().
		Prohibit(stmtkind.SelectStmt).Build())

	add(New(stmtkind.AlterTableStmt, token.Alter).Required(token.Table).
		OptionalIfExistsGroup().AnyTokens().Build())

	add(New(stmtkind.ViewStmt, token.Create).
		OptionalOrReplaceGroup().
		Optional(token.Temporary).
		Optional(token.Temp).
		Optional(token.Recursive).
		Required(token.View).
		OptionalSchemaNameGroup().
		Required(token.Ident).
		AnyTokens().
		Required(token.As).
		Prohibit(stmtkind.SelectStmt).Build())
	add(New(stmtkind.ViewStmt, token.Create).
		Optional(token.Or).
		Optional(token.Replace).
		Optional(token.Temporary).
		Optional(token.Temp).
		Optional(token.Recursive).
		Required(token.View).
		OptionalIfNotExistsGroup().
		OptionalSchemaNameGroup().
		Required(token.Ident).
		AnyTokens().
		Required(token.As).
		Prohibit(stmtkind.SelectStmt).Build())

	add(New(stmtkind.IndexStmt, token.Create).
		OptionalGroup(token.Unique).
		Required(token.Index).
		OptionalGroup(token.Concurrently).
		OptionalIfNotExistsGroup().
		AnyTokens().Build())

	add(New(stmtkind.TruncateStmt, token.Truncate).AnyTokens().Build())

	add(New(stmtkind.CommentStmt, token.Comment).Required(token.On).AnyTokens().Build())

	// --- FUNCTIONS / PROCEDURES / TRIGGERS ------------------------------
	add(New(stmtkind.CreateFunctionStmt, token.Create).
		OptionalOrReplaceGroup().
		OneOf(token.Function, token.Procedure).
		AnyTokens().Build())

	add(New(stmtkind.AlterFunctionStmt, token.Alter).
		OneOf(token.Function, token.Procedure).
		AnyTokens().Build())

	add(New(stmtkind.DoStmt, token.Do).AnyTokens().Build())

	add(New(stmtkind.RuleStmt, token.Create).
		OptionalOrReplaceGroup().
		Required(token.Rule).
		AnyTokens().
		Prohibit(stmtkind.SelectStmt, stmtkind.InsertStmt, stmtkind.UpdateStmt, stmtkind.DeleteStmt, stmtkind.DoStmt).
		Build())

	add(New(stmtkind.CreateTrigStmt, token.Create).
		Optional(token.Or).
		Optional(token.Replace).
		Optional(token.Constraint).
		Required(token.Trigger).
		OptionalSchemaNameGroup().
		Required(token.Ident).
		AnyTokens().
		Required(token.On).
		Required(token.Ident).
		AnyTokens().
		Required(token.Execute).
		OneOf(token.Function, token.Procedure).
		OptionalSchemaNameGroup().
		Required(token.Ident).Build())

	add(New(stmtkind.CallStmt, token.Call).AnyTokens().Build())

	// --- TRANSACTION CONTROL --------------------------------------------
	add(New(stmtkind.TransactionStmt, token.Begin).AnyTokens().Build())
	add(New(stmtkind.TransactionStmt, token.Start).Required(token.Transaction).AnyTokens().Build())
	add(New(stmtkind.TransactionStmt, token.Commit).AnyTokens().Build())
	add(New(stmtkind.TransactionStmt, token.Rollback).AnyTokens().Build())
	add(New(stmtkind.TransactionStmt, token.Savepoint).AnyTokens().Build())
	add(New(stmtkind.TransactionStmt, token.Release).AnyTokens().Build())
	add(New(stmtkind.TransactionStmt, token.End).AnyTokens().Build())

	// --- SESSION / VARIABLES --------------------------------------------
	add(New(stmtkind.VariableSetStmt, token.Set).AnyTokens().Build())
	add(New(stmtkind.VariableSetStmt, token.Reset).AnyTokens().Build())
	add(New(stmtkind.VariableShowStmt, token.Show).AnyTokens().Build())
	add(New(stmtkind.DiscardStmt, token.Discard).AnyTokens().Build())

	// --- ACCESS CONTROL --------------------------------------------------
	add(New(stmtkind.GrantStmt, token.Grant).AnyTokens().Build())
	add(New(stmtkind.GrantStmt, token.Revoke).AnyTokens().Build())

	// --- DROP -------------------------------------------------------------
	add(New(stmtkind.DropStmt, token.Drop).AnyTokens().Build())

	// --- CURSORS / PREPARED STATEMENTS -------------------------------------
	add(New(stmtkind.FetchStmt, token.Fetch).AnyTokens().Build())
	add(New(stmtkind.FetchStmt, token.Move).AnyTokens().Build())

	add(New(stmtkind.DeclareCursorStmt, token.Declare).
		AnyTokens(token.Ident, token.Binary, token.Insensitive, token.Scroll, token.No).
		Required(token.Cursor).
		AnyTokens(token.With, token.Without, token.Hold).
		Required(token.For).
		Prohibit(stmtkind.SelectStmt).Build())

	add(New(stmtkind.PrepareStmt, token.Prepare).AnyTokens(token.Ident, token.Ascii40, token.Ascii41, token.Ascii44).
		Required(token.As).
		Prohibit(stmtkind.SelectStmt).Build())

	add(New(stmtkind.ExecuteStmt, token.Execute).AnyTokens().Build())
	add(New(stmtkind.DeallocateStmt, token.Deallocate).AnyTokens().Build())

	// --- EXPLAIN -----------------------------------------------------------
	add(New(stmtkind.ExplainStmt, token.Explain).
		Prohibit(stmtkind.SelectStmt, stmtkind.InsertStmt, stmtkind.UpdateStmt, stmtkind.DeleteStmt, stmtkind.MergeStmt, stmtkind.ExecuteStmt).
		Build())

	// --- MAINTENANCE ---------------------------------------------------------
	add(New(stmtkind.VacuumStmt, token.Vacuum).AnyTokens().Build())
	add(New(stmtkind.CopyStmt, token.Copy).AnyTokens().Build())
	add(New(stmtkind.LockStmt, token.Lock).AnyTokens().Build())
	add(New(stmtkind.ConstraintsSetStmt, token.Set).Required(token.Constraints).AnyTokens().Build())
	add(New(stmtkind.ReindexStmt, token.Reindex).AnyTokens().Build())
	add(New(stmtkind.CheckPointStmt, token.Checkpoint).Build())
	add(New(stmtkind.ClusterStmt, token.Cluster).AnyTokens().Build())

	// --- SCHEMA / TYPES ---------------------------------------------------
	add(New(stmtkind.CreateSchemaStmt, token.Create).Required(token.Schema).AnyTokens().Build())
	add(New(stmtkind.CreateDomainStmt, token.Create).Required(token.Domain).AnyTokens().Build())
	add(New(stmtkind.AlterDomainStmt, token.Alter).Required(token.Domain).AnyTokens().Build())
	add(New(stmtkind.CreateEnumStmt, token.Create).Required(token.Type).AnyTokens(token.Ident, token.Ascii46).
		Required(token.As).Required(token.Enum).AnyTokens().Build())
	add(New(stmtkind.CreateRangeStmt, token.Create).Required(token.Type).AnyTokens(token.Ident, token.Ascii46).
		Required(token.As).Required(token.Range).AnyTokens().Build())
	add(New(stmtkind.CompositeTypeStmt, token.Create).Required(token.Type).AnyTokens(token.Ident, token.Ascii46).
		Required(token.As).Required(token.Ascii40).AnyTokens().Build())
	add(New(stmtkind.DefineStmt, token.Create).Required(token.Aggregate).AnyTokens().Build())
	add(New(stmtkind.DefineStmt, token.Create).Required(token.Operator).AnyTokens().Build())
	add(New(stmtkind.DefineStmt, token.Create).Required(token.Type).AnyTokens().Build())
	add(New(stmtkind.AlterTypeStmt, token.Alter).Required(token.Type).AnyTokens().Build())
	add(New(stmtkind.CreateOpClassStmt, token.Create).Required(token.Operator).Required(token.Class).AnyTokens().Build())
	add(New(stmtkind.CreateOpFamilyStmt, token.Create).Required(token.Operator).Required(token.Family).AnyTokens().Build())
	add(New(stmtkind.AlterOpFamilyStmt, token.Alter).Required(token.Operator).Required(token.Family).AnyTokens().Build())
	add(New(stmtkind.AlterOperatorStmt, token.Alter).Required(token.Operator).AnyTokens().Build())
	add(New(stmtkind.CreateCastStmt, token.Create).Required(token.Cast).AnyTokens().Build())
	add(New(stmtkind.CreateConversionStmt, token.Create).
		OptionalGroup(token.Default).
		Required(token.Conversion).AnyTokens().Build())

	// --- POLICIES / SECURITY -------------------------------------------------
	add(New(stmtkind.CreatePolicyStmt, token.Create).Required(token.Policy).AnyTokens().Build())
	add(New(stmtkind.AlterPolicyStmt, token.Alter).Required(token.Policy).AnyTokens().Build())
	add(New(stmtkind.SecLabelStmt, token.Security).Required(token.Label).AnyTokens().Build())
	add(New(stmtkind.AlterDefaultPrivilegesStmt, token.Alter).Required(token.Default).Required(token.Privileges).AnyTokens().Build())

	// --- EXTENSIONS / FDW --------------------------------------------------
	add(New(stmtkind.CreateExtensionStmt, token.Create).Required(token.Extension).AnyTokens().Build())
	add(New(stmtkind.AlterExtensionStmt, token.Alter).Required(token.Extension).AnyTokens().Build())
	add(New(stmtkind.CreateFdwStmt, token.Create).Required(token.Foreign).Required(token.Data).Required(token.Wrapper).AnyTokens().Build())
	add(New(stmtkind.AlterFdwStmt, token.Alter).Required(token.Foreign).Required(token.Data).Required(token.Wrapper).AnyTokens().Build())
	add(New(stmtkind.CreateForeignServerStmt, token.Create).Required(token.Server).AnyTokens().Build())
	add(New(stmtkind.AlterForeignServerStmt, token.Alter).Required(token.Server).AnyTokens().Build())
	add(New(stmtkind.CreateUserMappingStmt, token.Create).Required(token.User).Required(token.Mapping).AnyTokens().Build())
	add(New(stmtkind.AlterUserMappingStmt, token.Alter).Required(token.User).Required(token.Mapping).AnyTokens().Build())
	add(New(stmtkind.DropUserMappingStmt, token.Drop).Required(token.User).Required(token.Mapping).AnyTokens().Build())
	add(New(stmtkind.CreateForeignTableStmt, token.Create).Required(token.Foreign).Required(token.Table).AnyTokens().Build())
	add(New(stmtkind.ImportForeignSchemaStmt, token.Import).Required(token.Foreign).Required(token.Schema).AnyTokens().Build())

	// --- EVENT TRIGGERS / PUBLICATIONS --------------------------------------
	add(New(stmtkind.CreateEventTrigStmt, token.Create).Required(token.Event).Required(token.Trigger).AnyTokens().Build())
	add(New(stmtkind.AlterEventTrigStmt, token.Alter).Required(token.Event).Required(token.Trigger).AnyTokens().Build())
	add(New(stmtkind.RefreshMatViewStmt, token.Refresh).Required(token.Materialized).Required(token.View).AnyTokens().Build())
	add(New(stmtkind.AlterSystemStmt, token.Alter).Required(token.System).AnyTokens().Build())
	add(New(stmtkind.CreateTransformStmt, token.Create).Required(token.Transform).AnyTokens().Build())
	add(New(stmtkind.CreateAmStmt, token.Create).Required(token.Access).Required(token.Method).AnyTokens().Build())
	add(New(stmtkind.CreateStatsStmt, token.Create).Required(token.Statistics).AnyTokens().Build())
	add(New(stmtkind.AlterStatsStmt, token.Alter).Required(token.Statistics).AnyTokens().Build())
	add(New(stmtkind.AlterCollationStmt, token.Alter).Required(token.Collation).AnyTokens().Build())
	add(New(stmtkind.CreatePublicationStmt, token.Create).Required(token.Publication).AnyTokens().Build())
	add(New(stmtkind.AlterPublicationStmt, token.Alter).Required(token.Publication).AnyTokens().Build())
	add(New(stmtkind.CreateSubscriptionStmt, token.Create).Required(token.Subscription).AnyTokens().Build())
	add(New(stmtkind.AlterSubscriptionStmt, token.Alter).Required(token.Subscription).AnyTokens().Build())
	add(New(stmtkind.DropSubscriptionStmt, token.Drop).Required(token.Subscription).AnyTokens().Build())

	// --- ROLES / DATABASES / TABLESPACES -----------------------------------
	add(New(stmtkind.CreateRoleStmt, token.Create).OneOf(token.Role, token.User, token.Group).AnyTokens().Build())
	add(New(stmtkind.AlterRoleStmt, token.Alter).OneOf(token.Role, token.User, token.Group).AnyTokens().Build())
	add(New(stmtkind.DropRoleStmt, token.Drop).OneOf(token.Role, token.User, token.Group).AnyTokens().Build())
	add(New(stmtkind.CreateTableSpaceStmt, token.Create).Required(token.Tablespace).AnyTokens().Build())
	add(New(stmtkind.DropTableSpaceStmt, token.Drop).Required(token.Tablespace).AnyTokens().Build())
	add(New(stmtkind.DropOwnedStmt, token.Drop).Required(token.Owned).AnyTokens().Build())
	add(New(stmtkind.ReassignOwnedStmt, token.Reassign).Required(token.Owned).AnyTokens().Build())
	add(New(stmtkind.AlterOwnerStmt, token.Alter).AnyTokens(token.Ident, token.Ascii46).Required(token.Owner).AnyTokens().Build())
	add(New(stmtkind.AlterObjectSchemaStmt, token.Alter).AnyTokens().Required(token.Set).Required(token.Schema).AnyTokens().Build())
	add(New(stmtkind.RenameStmt, token.Alter).AnyTokens().Required(token.Rename).AnyTokens().Build())
	add(New(stmtkind.CreatePlangStmt, token.Create).
		OptionalGroup(token.Trusted).
		OptionalGroup(token.Procedural).
		Required(token.Language).AnyTokens().Build())
	add(New(stmtkind.LoadStmt, token.Load).AnyTokens().Build())
	add(New(stmtkind.NotifyStmt, token.Notify).AnyTokens().Build())
	add(New(stmtkind.ListenStmt, token.Listen).AnyTokens().Build())
	add(New(stmtkind.UnlistenStmt, token.Unlisten).AnyTokens().Build())
	add(New(stmtkind.AlterDatabaseStmt, token.Alter).Required(token.Database).AnyTokens().Build())
	add(New(stmtkind.CreatedbStmt, token.Create).Required(token.Database).AnyTokens().Build())
	add(New(stmtkind.DropdbStmt, token.Drop).Required(token.Database).AnyTokens().Build())
	add(New(stmtkind.AlterSeqStmt, token.Alter).Required(token.Sequence).AnyTokens().Build())
	add(New(stmtkind.CreateSeqStmt, token.Create).
		OptionalGroup(token.Temp).
		OptionalGroup(token.Temporary).
		OptionalGroup(token.Unlogged).
		Required(token.Sequence).AnyTokens().Build())

	return defs
}
