package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-ls/core/stmtkind"
)

func kindsOf(result Result) []stmtkind.Kind {
	var ks []stmtkind.Kind
	for _, r := range result.Ranges {
		ks = append(ks, r.Kind)
	}
	return ks
}

func textsOf(t *testing.T, src string, result Result) []string {
	var ts []string
	for _, r := range result.Ranges {
		ts = append(ts, src[r.Range.Start:r.Range.End])
	}
	return ts
}

func TestSplitTwoSelects(t *testing.T) {
	src := "select 1; select 2;"
	result := Split(src)
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.Ranges, 2)
	assert.Equal(t, []stmtkind.Kind{stmtkind.SelectStmt, stmtkind.SelectStmt}, kindsOf(result))
	assert.Equal(t, []string{"select 1;", "select 2;"}, textsOf(t, src, result))
}

func TestSplitCreateTableAndInsert(t *testing.T) {
	src := "create table t (id int); insert into t values (1);"
	result := Split(src)
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.Ranges, 2)
	assert.Equal(t, stmtkind.CreateStmt, result.Ranges[0].Kind)
	assert.Equal(t, stmtkind.InsertStmt, result.Ranges[1].Kind)
}

func TestSplitCreateTableAsDisambiguatesFromCreateTable(t *testing.T) {
	src := "create table t as select 1;"
	result := Split(src)
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.Ranges, 1)
	assert.Equal(t, stmtkind.CreateTableAsStmt, result.Ranges[0].Kind)
}

func TestSplitViewStmtCoversTrailingSelect(t *testing.T) {
	src := "create view v as select 1;"
	result := Split(src)
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.Ranges, 1)
	assert.Equal(t, stmtkind.ViewStmt, result.Ranges[0].Kind)
}

func TestSplitUnionBridgesBackToSelect(t *testing.T) {
	src := "select 1 union select 2;"
	result := Split(src)
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.Ranges, 1)
	assert.Equal(t, stmtkind.SelectStmt, result.Ranges[0].Kind)
}

func TestSplitNestedParensDoNotCloseOnInnerSemicolonlessTokens(t *testing.T) {
	src := "select (1 + (2 * 3)) from t;"
	result := Split(src)
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.Ranges, 1)
	assert.Equal(t, stmtkind.SelectStmt, result.Ranges[0].Kind)
}

// TestSplitSpecScenarios reproduces the five splitter-level end-to-end
// scenarios, verbatim inputs and all; the sixth, document-level scenario is
// TestApplySequenceReproducesSpecScenario in package document.
func TestSplitSpecScenarios(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		kinds []stmtkind.Kind
		spans [][2]int
	}{
		{
			name:  "trailing select after semicolon and newline",
			src:   "select id from users;\nselect 1",
			kinds: []stmtkind.Kind{stmtkind.SelectStmt, stmtkind.SelectStmt},
			spans: [][2]int{{0, 21}, {22, 30}},
		},
		{
			name:  "create trigger not truncated at before/update, followed by execute",
			src:   "CREATE OR REPLACE TRIGGER t BEFORE UPDATE OF b ON a FOR EACH ROW EXECUTE FUNCTION f();\nexecute test;",
			kinds: []stmtkind.Kind{stmtkind.CreateTrigStmt, stmtkind.ExecuteStmt},
			spans: [][2]int{{0, 86}, {87, 100}},
		},
		{
			name:  "explain not closed by its internal select, trailing bare selects split off",
			src:   "explain select 1 from c\nselect 1\nselect 4",
			kinds: []stmtkind.Kind{stmtkind.ExplainStmt, stmtkind.SelectStmt, stmtkind.SelectStmt},
			spans: [][2]int{{0, 23}, {24, 32}, {33, 41}},
		},
		{
			name:  "create rule's embedded delete does not spawn a DeleteStmt",
			src:   "create rule r as on insert to t do also delete from t;",
			kinds: []stmtkind.Kind{stmtkind.RuleStmt},
			spans: [][2]int{{0, 54}},
		},
		{
			name:  "begin atomic block's inner semicolon is data, not a statement boundary",
			src:   "create procedure p() language sql begin atomic insert into t values (1); end; select 1;",
			kinds: []stmtkind.Kind{stmtkind.CreateFunctionStmt, stmtkind.SelectStmt},
			spans: [][2]int{{0, 77}, {78, 87}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Split(tc.src)
			require.Empty(t, result.Diagnostics)
			require.Len(t, result.Ranges, len(tc.kinds))
			assert.Equal(t, tc.kinds, kindsOf(result))
			for i, sp := range tc.spans {
				assert.Equal(t, sp[0], result.Ranges[i].Range.Start, "range %d start", i)
				assert.Equal(t, sp[1], result.Ranges[i].Range.End, "range %d end", i)
			}
		})
	}
}

func TestSplitTrailingIncompleteStatementIsSalvaged(t *testing.T) {
	src := "select 1; create table"
	result := Split(src)
	require.Empty(t, result.Diagnostics)
	require.Len(t, result.Ranges, 2)
	assert.Equal(t, stmtkind.SelectStmt, result.Ranges[0].Kind)
	assert.Equal(t, stmtkind.Unknown, result.Ranges[1].Kind)
}

func TestSplitEmptyInputProducesNoRanges(t *testing.T) {
	result := Split("   \n  ")
	assert.Empty(t, result.Ranges)
	assert.Empty(t, result.Diagnostics)
}

func TestSplitFatalLexErrorProducesNoRanges(t *testing.T) {
	result := Split("select 'unterminated")
	require.NotEmpty(t, result.Diagnostics)
	assert.Empty(t, result.Ranges)
}
