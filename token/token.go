// Package token defines the closed token-kind enumeration shared by the
// lexer, the statement definition table, and the splitter.
package token

// Kind identifies the lexical category of a Token. The enumeration is
// closed: new statement kinds are added to stmtkind, not here, unless a
// genuinely new lexical form appears in PostgreSQL syntax.
type Kind int

const (
	Illegal Kind = iota
	Eof

	// Whitespace set (see IsWhitespace).
	Whitespace
	Tab
	Newline
	SqlComment

	// Identifiers and literals.
	Ident
	QuotedIdent
	Sconst // string constant, any of '...', E'...', B'...', X'...', U&'...', $tag$...$tag$
	Iconst // integer/numeric constant
	Param  // $1, $2, ...

	// Punctuation, named by codepoint per spec.md's convention.
	Ascii40 // (
	Ascii41 // )
	Ascii44 // ,
	Ascii46 // .
	Ascii59 // ;
	Ascii61 // =
	Ascii42 // *
	Ascii43 // +
	Ascii45 // -
	Ascii47 // /

	// Multi-char operators.
	DoubleColon // ::
	NotEq       // <> or !=
	Ge          // >=
	Le          // <=
	Lt          // <
	Gt          // >

	keywordBeg

	// Reserved/unreserved keywords, including every one that appears as an
	// anchor or step in the statement definition table or that the splitter
	// checks by name. The list is a subset of PostgreSQL's keywords; words
	// not listed here lex as Ident.
	Abort
	Absolute
	Access
	Action
	Add
	Admin
	After
	Aggregate
	All
	Also
	Alter
	Always
	Analyze
	And
	Any
	As
	Asc
	Assignment
	At
	Atomic
	Attach
	Attribute
	Authorization
	Backward
	Before
	Begin
	Bigint
	Binary
	Bit
	Boolean
	Both
	By
	Cache
	Call
	Called
	Cascade
	Cascaded
	Case
	Cast
	Catalog
	Chain
	Char
	Character
	Check
	Checkpoint
	Class
	Close
	Cluster
	Collate
	Collation
	Column
	Columns
	Comment
	Comments
	Commit
	Committed
	Concurrently
	Configuration
	Conflict
	Connection
	Constraint
	Constraints
	Conversion
	Copy
	Cost
	Create
	Cross
	Cube
	Current
	Cursor
	Cycle
	Data
	Database
	Day
	Deallocate
	Dec
	Decimal
	Declare
	Default
	Defaults
	Deferrable
	Deferred
	Definer
	Delete
	Delimiter
	Delimiters
	Desc
	Detach
	Dictionary
	Discard
	Distinct
	Do
	Document
	Domain
	Double
	Drop
	Each
	Else
	Enable
	Encoding
	Encrypted
	End
	Enum
	Escape
	Event
	Except
	Exclude
	Excluding
	Exclusive
	Execute
	Exists
	Explain
	Extension
	External
	Family
	Fetch
	Filter
	First
	Float
	Following
	For
	Force
	Foreign
	Format
	Forward
	Freeze
	From
	Full
	Function
	Functions
	Generated
	Global
	Grant
	Granted
	Group
	Handler
	Having
	Header
	Hold
	Hour
	Identity
	If
	Ilike
	Immediate
	Immutable
	Implicit
	Import
	In
	Including
	Increment
	Index
	Indexes
	Inherit
	Inherits
	Initially
	Inline
	Inner
	Inout
	Input
	Insensitive
	Insert
	Instead
	Int
	Integer
	Intersect
	Into
	Invoker
	Is
	Isolation
	Join
	Key
	Label
	Language
	Large
	Last
	Lateral
	Leading
	Leakproof
	Left
	Level
	Like
	Limit
	Listen
	Load
	Local
	Location
	Lock
	Locked
	Logged
	Mapping
	Match
	Materialized
	Maxvalue
	Merge
	Method
	Minute
	Minvalue
	Mode
	Month
	Move
	Name
	Names
	National
	Natural
	Nchar
	New
	Next
	No
	None
	Not
	Nothing
	Notify
	Nowait
	Null
	Nulls
	Numeric
	Object
	Of
	Off
	Offset
	Oids
	Old
	On
	Only
	Operator
	Option
	Options
	Or
	Order
	Others
	Out
	Outer
	Over
	Overriding
	Owned
	Owner
	Parallel
	Parser
	Partial
	Partition
	Password
	Placing
	Plan
	Plans
	Policy
	Precision
	Prepare
	Prepared
	Preserve
	Primary
	Prior
	Privileges
	Procedural
	Procedure
	Procedures
	Program
	Publication
	Quote
	Range
	Read
	Real
	Reassign
	Recursive
	Ref
	References
	Referencing
	Refresh
	Reindex
	Relative
	Release
	Rename
	Repeatable
	Replace
	Replica
	Reset
	Restart
	Restrict
	Returns
	Revoke
	Right
	Role
	Rollback
	Rollup
	Routine
	Routines
	Row
	Rows
	Rule
	Savepoint
	Schema
	Schemas
	Scroll
	Search
	Second
	Security
	Select
	Sequence
	Sequences
	Serializable
	Server
	Session
	Set
	Sets
	Setof
	Share
	Show
	Similar
	Simple
	Smallint
	Snapshot
	Some
	Sql
	Stable
	Standalone
	Start
	Statement
	Statistics
	Stdin
	Stdout
	Storage
	Stored
	Strict
	Subscription
	Support
	Symmetric
	Sysid
	System
	Table
	Tables
	Tablesample
	Tablespace
	Target
	Temp
	Template
	Temporary
	Text
	Then
	Ties
	Time
	Timestamp
	To
	Trailing
	Transaction
	Transform
	Treat
	Trigger
	Truncate
	Trusted
	Type
	Types
	Unbounded
	Uncommitted
	Unencrypted
	Union
	Unique
	Unknown_
	Unlisten
	Unlogged
	Until
	Update
	User
	Using
	Vacuum
	Valid
	Validate
	Validator
	Value
	Values
	Varchar
	Variadic
	Varying
	Verbose
	Version
	View
	Views
	Volatile
	When
	Where
	With
	Within
	Without
	Work
	Wrapper
	Write
	Year
	Zone

	keywordEnd
)

// IsKeyword reports whether k is a keyword kind (as opposed to punctuation,
// literal, whitespace, or Ident/QuotedIdent).
func IsKeyword(k Kind) bool {
	return k > keywordBeg && k < keywordEnd
}

// IsWhitespace reports whether k belongs to the distinguished whitespace set
// that the token view (and every higher component) treats as insignificant.
func IsWhitespace(k Kind) bool {
	return k == Whitespace || k == Tab || k == Newline || k == SqlComment
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Token is one lexical unit produced by the lexer.
type Token struct {
	Kind Kind
	Span Span
	Text string
}
