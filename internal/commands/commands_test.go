package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfin-dev/campusfin/internal/store"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "campusfin-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "campusfin")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/campusfin")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runCampusfin(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runCampusfin(t, "init", dir, "--school", "Northside High")
	require.NoError(t, err, "init failed: %s", out)
	return dir
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initProject(t)

	for _, d := range []string{"logs", "import", filepath.Join("import", "processed")} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}

	data, err := os.ReadFile(filepath.Join(dir, "campusfin.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Northside High")
	assert.Contains(t, string(data), "file: students_finance.json")
}

func TestInit_RequiresSchool(t *testing.T) {
	dir := t.TempDir()
	_, err := runCampusfin(t, "init", dir)
	require.Error(t, err, "init without --school should fail")
}

func TestStudentAddListRemove(t *testing.T) {
	dir := initProject(t)

	out, err := runCampusfin(t, "student", "add", "S1", "Alice", "--repo", dir)
	require.NoError(t, err, out)

	out, err = runCampusfin(t, "student", "add", "S1", "Bob", "--repo", dir)
	require.Error(t, err, "duplicate student ID must fail")
	assert.Contains(t, out, "already exists")

	out, err = runCampusfin(t, "student", "list", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "S1: Alice")
	assert.Contains(t, out, "Balance: 0.00")

	out, err = runCampusfin(t, "student", "remove", "S1", "--repo", dir)
	require.NoError(t, err, out)

	out, err = runCampusfin(t, "student", "remove", "S1", "--repo", dir)
	require.Error(t, err, "removing an unknown student must fail")
	assert.Contains(t, out, "not found")

	out, err = runCampusfin(t, "student", "list", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No students.")
}

func TestRecordAndReport(t *testing.T) {
	dir := initProject(t)

	_, err := runCampusfin(t, "student", "add", "S1", "Alice", "--repo", dir)
	require.NoError(t, err)

	// 1500.505 rounds to 1500.51 at record time.
	out, err := runCampusfin(t, "record", "income", "S1", "1500.505", "--date", "2024-01-10", "--repo", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "1500.51")

	out, err = runCampusfin(t, "record", "expense", "S1", "200", "--desc", "Books", "--date", "2024-01-15", "--repo", dir)
	require.NoError(t, err, out)

	out, err = runCampusfin(t, "report", "S1", "--repo", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Balance: 1300.51")
	assert.Contains(t, out, "[2024-01-10] income  +1500.51")
	assert.Contains(t, out, "[2024-01-15] expense -200.00  Books")

	// Transactions appear in append order.
	incomeIdx := strings.Index(out, "+1500.51")
	expenseIdx := strings.Index(out, "-200.00")
	assert.Less(t, incomeIdx, expenseIdx)
}

func TestRecord_UnknownStudent(t *testing.T) {
	dir := initProject(t)

	out, err := runCampusfin(t, "record", "income", "S9", "10", "--repo", dir)
	require.Error(t, err)
	assert.Contains(t, out, "not found")

	// No student was created as a side effect.
	out, err = runCampusfin(t, "student", "list", "--repo", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No students.")
}

func TestRecord_InvalidAmount(t *testing.T) {
	dir := initProject(t)
	_, err := runCampusfin(t, "student", "add", "S1", "Alice", "--repo", dir)
	require.NoError(t, err)

	out, err := runCampusfin(t, "record", "income", "S1", "ten", "--repo", dir)
	require.Error(t, err)
	assert.Contains(t, out, "invalid amount")
}

func TestRecord_InvalidDateFallsBackToToday(t *testing.T) {
	dir := initProject(t)
	_, err := runCampusfin(t, "student", "add", "S1", "Alice", "--repo", dir)
	require.NoError(t, err)

	out, err := runCampusfin(t, "record", "income", "S1", "10", "--date", "10/01/2024", "--repo", dir)
	require.NoError(t, err, "invalid date falls back to today, not an error")
	assert.Contains(t, out, "using today's date")
}

func TestStatePersistsAcrossProcesses(t *testing.T) {
	dir := initProject(t)

	_, err := runCampusfin(t, "student", "add", "S1", "Alice", "--repo", dir)
	require.NoError(t, err)
	_, err = runCampusfin(t, "record", "income", "S1", "42.42", "--date", "2024-03-01", "--repo", dir)
	require.NoError(t, err)

	// The data file on disk matches the documented wire format.
	students, err := store.Load(filepath.Join(dir, "students_finance.json"))
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Len(t, students[0].Transactions, 1)
	assert.Equal(t, "42.42", students[0].Transactions[0].Amount.StringFixed(2))
}

func TestActivityLogWritten(t *testing.T) {
	dir := initProject(t)

	_, err := runCampusfin(t, "student", "add", "S1", "Alice", "--repo", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "activity-log.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "student-add")
	assert.Contains(t, string(data), "S1")
}

func TestImport(t *testing.T) {
	dir := initProject(t)

	_, err := runCampusfin(t, "student", "add", "S1", "Alice", "--repo", dir)
	require.NoError(t, err)

	csvData, err := os.ReadFile(filepath.Join("..", "..", "testdata", "statement.csv"))
	require.NoError(t, err)
	csvPath := filepath.Join(dir, "import", "statement.csv")
	require.NoError(t, os.WriteFile(csvPath, csvData, 0o644))

	out, err := runCampusfin(t, "import", csvPath, "--student", "S1", "--repo", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Imported 4 transactions")

	out, err = runCampusfin(t, "report", "S1", "--repo", dir)
	require.NoError(t, err)
	// 1500.51 - 200.00 + 320.50 - 12.75
	assert.Contains(t, out, "Balance: 1608.26")

	// The statement was filed under import/processed/.
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "statement.csv"))
	require.NoError(t, err)
}

func TestImport_UnknownStudent(t *testing.T) {
	dir := initProject(t)

	csvPath := filepath.Join(dir, "statement.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("date,description,amount\n2024-01-01,Books,-5\n"), 0o644))

	out, err := runCampusfin(t, "import", csvPath, "--student", "S9", "--repo", dir)
	require.Error(t, err)
	assert.Contains(t, out, "not found")
}
