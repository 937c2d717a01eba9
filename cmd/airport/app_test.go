package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramHazza3/Airport-Ticket-Booking-System-Unit-Testing/shared/models"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	var out bytes.Buffer
	err := newApp(strings.NewReader(input), &out).RunContext(context.Background(), append([]string{"airport"}, args...))
	return out.String(), err
}

func TestRules(t *testing.T) {
	out, err := run(t, "", "rules", "Flight")
	require.NoError(t, err)
	assert.Contains(t, out, "FLIGHT\n")
	assert.Contains(t, out, "DepartureDate:\nType: DateTime")
	assert.NotContains(t, out, "USER\n")

	out, err = run(t, "", "rules")
	require.NoError(t, err)
	for _, title := range []string{"USER\n", "FLIGHT\n", "BOOKING\n"} {
		assert.Contains(t, out, title)
	}

	_, err = run(t, "", "rules", "airline")
	assert.ErrorContains(t, err, `unknown entity "airline"`)
}

func TestImport_FileStorage(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "flights.csv")
	row := strings.Join([]string{
		uuid.NewString(), "Jordan", "Queen Alia", "Spain", "Barajas",
		time.Now().AddDate(0, 2, 0).Format(models.DateLayout), "Economy:100:120.5;Business:10:400",
	}, ",")
	require.NoError(t, os.WriteFile(csvPath, []byte("Id,DepartureCountry,DepartureAirport,DestinationCountry,ArrivalAirport,DepartureDate,AvailableClasses\n"+row+"\n"), 0o644))
	dataDir := filepath.Join(dir, "Data")

	out, err := run(t, "", "--storage", "file", "--data-dir", dataDir, "import", csvPath)

	require.NoError(t, err)
	assert.Equal(t, "Imported 1 flights\n", out)
	data, err := os.ReadFile(filepath.Join(dataDir, "Flight.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Barajas")
}

func TestImport_BlankPath(t *testing.T) {
	_, err := run(t, "", "--storage", "memory", "import")

	assert.ErrorContains(t, err, "Csv.FilePath")
}

func TestInteractive_RegisterAndExit(t *testing.T) {
	out, err := run(t, "2\nAlice\nalice@example.com\npw\n1\n3\n", "--storage", "memory")

	require.NoError(t, err)
	assert.Contains(t, out, "Registration successful")
}

func TestSetup_InvalidConfiguration(t *testing.T) {
	_, err := run(t, "", "--storage", "redis")

	assert.ErrorContains(t, err, "unknown storage driver")
}
