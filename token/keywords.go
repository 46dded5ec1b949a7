package token

// Keywords maps the lowercased spelling of each keyword Kind to that Kind,
// covering every keyword the statement definition table references by name.
// Identifiers that do not appear here lex as Ident.
var Keywords = map[string]Kind{
	"abort": Abort, "absolute": Absolute, "access": Access, "action": Action,
	"add": Add, "admin": Admin, "after": After, "aggregate": Aggregate,
	"all": All, "also": Also, "alter": Alter, "always": Always,
	"analyze": Analyze, "analyse": Analyze, "and": And, "any": Any,
	"as": As, "asc": Asc, "assignment": Assignment, "at": At,
	"atomic": Atomic, "attach": Attach, "attribute": Attribute,
	"authorization": Authorization, "backward": Backward, "before": Before,
	"begin": Begin, "bigint": Bigint, "binary": Binary, "bit": Bit,
	"boolean": Boolean, "both": Both, "by": By, "cache": Cache,
	"call": Call, "called": Called, "cascade": Cascade,
	"cascaded": Cascaded, "case": Case, "cast": Cast, "catalog": Catalog,
	"chain": Chain, "char": Char, "character": Character, "check": Check,
	"checkpoint": Checkpoint, "class": Class, "close": Close,
	"cluster": Cluster, "collate": Collate, "collation": Collation,
	"column": Column, "columns": Columns, "comment": Comment,
	"comments": Comments, "commit": Commit, "committed": Committed,
	"concurrently": Concurrently, "configuration": Configuration,
	"conflict": Conflict, "connection": Connection,
	"constraint": Constraint, "constraints": Constraints,
	"conversion": Conversion, "copy": Copy, "cost": Cost, "create": Create,
	"cross": Cross, "cube": Cube, "current": Current, "cursor": Cursor,
	"cycle": Cycle, "data": Data, "database": Database, "day": Day,
	"deallocate": Deallocate, "dec": Dec, "decimal": Decimal,
	"declare": Declare, "default": Default, "defaults": Defaults,
	"deferrable": Deferrable, "deferred": Deferred, "definer": Definer,
	"delete": Delete, "delimiter": Delimiter, "delimiters": Delimiters,
	"desc": Desc, "detach": Detach, "dictionary": Dictionary,
	"discard": Discard, "distinct": Distinct, "do": Do,
	"document": Document, "domain": Domain, "double": Double, "drop": Drop,
	"each": Each, "else": Else, "enable": Enable, "encoding": Encoding,
	"encrypted": Encrypted, "end": End, "enum": Enum, "escape": Escape,
	"event": Event, "except": Except, "exclude": Exclude,
	"excluding": Excluding, "exclusive": Exclusive, "execute": Execute,
	"exists": Exists, "explain": Explain, "extension": Extension,
	"external": External, "family": Family, "fetch": Fetch,
	"filter": Filter, "first": First, "float": Float,
	"following": Following, "for": For, "force": Force, "foreign": Foreign,
	"format": Format, "forward": Forward, "freeze": Freeze, "from": From,
	"full": Full, "function": Function, "functions": Functions,
	"generated": Generated, "global": Global, "grant": Grant,
	"granted": Granted, "group": Group, "handler": Handler,
	"having": Having, "header": Header, "hold": Hold, "hour": Hour,
	"identity": Identity, "if": If, "ilike": Ilike, "immediate": Immediate,
	"immutable": Immutable, "implicit": Implicit, "import": Import,
	"in": In, "including": Including, "increment": Increment,
	"index": Index, "indexes": Indexes, "inherit": Inherit,
	"inherits": Inherits, "initially": Initially, "inline": Inline,
	"inner": Inner, "inout": Inout, "input": Input,
	"insensitive": Insensitive, "insert": Insert, "instead": Instead,
	"int": Int, "integer": Integer, "intersect": Intersect,
	"into": Into, "invoker": Invoker, "is": Is, "isolation": Isolation,
	"join": Join, "key": Key, "label": Label, "language": Language,
	"large": Large, "last": Last, "lateral": Lateral, "leading": Leading,
	"leakproof": Leakproof, "left": Left, "level": Level, "like": Like,
	"limit": Limit, "listen": Listen, "load": Load, "local": Local,
	"location": Location, "lock": Lock, "locked": Locked,
	"logged": Logged, "mapping": Mapping, "match": Match,
	"materialized": Materialized, "maxvalue": Maxvalue, "merge": Merge,
	"method": Method, "minute": Minute, "minvalue": Minvalue,
	"mode": Mode, "month": Month, "move": Move, "name": Name,
	"names": Names, "national": National, "natural": Natural,
	"nchar": Nchar, "new": New, "next": Next, "no": No, "none": None,
	"not": Not, "nothing": Nothing, "notify": Notify, "nowait": Nowait,
	"null": Null, "nulls": Nulls, "numeric": Numeric, "object": Object,
	"of": Of, "off": Off, "offset": Offset, "oids": Oids, "old": Old,
	"on": On, "only": Only, "operator": Operator, "option": Option,
	"options": Options, "or": Or, "order": Order, "others": Others,
	"out": Out, "outer": Outer, "over": Over, "overriding": Overriding,
	"owned": Owned, "owner": Owner, "parallel": Parallel,
	"parser": Parser, "partial": Partial, "partition": Partition,
	"password": Password, "placing": Placing, "plan": Plan,
	"plans": Plans, "policy": Policy, "precision": Precision,
	"prepare": Prepare, "prepared": Prepared, "preserve": Preserve,
	"primary": Primary, "prior": Prior, "privileges": Privileges,
	"procedural": Procedural, "procedure": Procedure,
	"procedures": Procedures, "program": Program,
	"publication": Publication, "quote": Quote, "range": Range,
	"read": Read, "real": Real, "reassign": Reassign, "recursive": Recursive,
	"ref": Ref, "references": References, "referencing": Referencing,
	"refresh": Refresh, "reindex": Reindex, "relative": Relative,
	"release": Release, "rename": Rename, "repeatable": Repeatable,
	"replace": Replace, "replica": Replica, "reset": Reset,
	"restart": Restart, "restrict": Restrict, "returns": Returns,
	"revoke": Revoke, "right": Right, "role": Role, "rollback": Rollback,
	"rollup": Rollup, "routine": Routine, "routines": Routines,
	"row": Row, "rows": Rows, "rule": Rule, "savepoint": Savepoint,
	"schema": Schema, "schemas": Schemas, "scroll": Scroll,
	"search": Search, "second": Second, "security": Security,
	"select": Select, "sequence": Sequence, "sequences": Sequences,
	"serializable": Serializable, "server": Server, "session": Session,
	"set": Set, "sets": Sets, "setof": Setof, "share": Share,
	"show": Show, "similar": Similar, "simple": Simple,
	"smallint": Smallint, "snapshot": Snapshot, "some": Some, "sql": Sql,
	"stable": Stable, "standalone": Standalone, "start": Start,
	"statement": Statement, "statistics": Statistics, "stdin": Stdin,
	"stdout": Stdout, "storage": Storage, "stored": Stored,
	"strict": Strict, "subscription": Subscription, "support": Support,
	"symmetric": Symmetric, "sysid": Sysid, "system": System,
	"table": Table, "tables": Tables, "tablesample": Tablesample,
	"tablespace": Tablespace, "target": Target, "temp": Temp,
	"template": Template, "temporary": Temporary, "text": Text,
	"then": Then, "ties": Ties, "time": Time, "timestamp": Timestamp,
	"to": To, "trailing": Trailing, "transaction": Transaction,
	"transform": Transform, "treat": Treat, "trigger": Trigger,
	"truncate": Truncate, "trusted": Trusted, "type": Type, "types": Types,
	"unbounded": Unbounded, "uncommitted": Uncommitted,
	"unencrypted": Unencrypted, "union": Union, "unique": Unique,
	"unknown": Unknown_, "unlisten": Unlisten, "unlogged": Unlogged,
	"until": Until, "update": Update, "user": User, "using": Using,
	"vacuum": Vacuum, "valid": Valid, "validate": Validate,
	"validator": Validator, "value": Value, "values": Values,
	"varchar": Varchar, "variadic": Variadic, "varying": Varying,
	"verbose": Verbose, "version": Version, "view": View, "views": Views,
	"volatile": Volatile, "when": When, "where": Where, "with": With,
	"within": Within, "without": Without, "work": Work, "wrapper": Wrapper,
	"write": Write, "year": Year, "zone": Zone,
}

// keywordKindNames is the inverse of Keywords, built once at init time so
// Kind.String() can render keyword kinds without a second literal table.
var keywordKindNames map[Kind]string

func init() {
	keywordKindNames = make(map[Kind]string, len(Keywords))
	for word, kind := range Keywords {
		keywordKindNames[kind] = word
	}
}
