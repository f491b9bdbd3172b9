package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run ejecuta la CLI sobre un almacén badger en dir y devuelve stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--driver", "badger", "--path", dir, "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) map[string]any {
	t.Helper()
	out, err := run(t, dir, args...)
	require.NoError(t, err, out)
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m), out)
	return m
}

func TestCLI_EntryAndConsolidate(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "entry", "add", "--worker", "5", "--site", "Fazenda Boa Vista", "--plot", "A1", "--date", "2024-05-02", "--boxes", "7")
	mustRun(t, dir, "entry", "add", "--worker", "6", "--site", "Fazenda Boa Vista", "--plot", "A1", "--date", "2024-05-02", "--boxes", "3")

	c := mustRun(t, dir, "consolidate", "--site", "Fazenda Boa Vista", "--plot", "A1", "--date", "2024-05-02")
	assert.EqualValues(t, 10, c["totalBoxes"])

	est := mustRun(t, dir, "estimate", "--site", "Fazenda Boa Vista", "--date", "2024-05-02", "--plots", "A1")
	assert.Equal(t, "250", est["kg"])

	rep := mustRun(t, dir, "report", "worker", "5", "--start", "2024-05-01", "--end", "2024-05-31")
	assert.EqualValues(t, 1, rep["daysWorked"])

	_, err := run(t, dir, "entry", "add", "--worker", "5", "--site", "Fazenda Boa Vista", "--plot", "A1", "--date", "2024-05-02", "--boxes", "0")
	assert.Error(t, err)
}

func TestCLI_ManifestToScale(t *testing.T) {
	dir := t.TempDir()
	m := mustRun(t, dir, "manifest", "create",
		"--site", "Fazenda Santa Rita", "--number", "R 77", "--plots", "T1,T2",
		"--declared", "25000", "--destination", "Usina Central")
	id := m["id"].(string)

	payload, err := run(t, dir, "manifest", "qr", id, "--out", filepath.Join(dir, "qr", "fiscal.png"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "qr", "fiscal.png"))
	require.NoError(t, err)

	c := mustRun(t, dir, "manifest", "complete", "--payload", strings.TrimSpace(payload),
		"--transporter", "Carlos", "--doc", "12345678901", "--plate", "abc1234", "--carrier", "Sul")
	assert.Equal(t, "pending", c["status"])

	// Completar dos veces no se permite.
	_, err = run(t, dir, "manifest", "complete", id, "--transporter", "X", "--doc", "1", "--plate", "XYZ9999", "--carrier", "Y")
	assert.Error(t, err)

	out, err := run(t, dir, "manifest", "slip", id, "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "romaneio_R_77.pdf"), strings.TrimSpace(out))

	out, err = run(t, dir, "manifest", "waybill", id, "--dir", dir)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out)[0], 96)

	res := mustRun(t, dir, "weigh", id, "--gross", "29000", "--tare", "1500", "--operator", "Balança 1")
	reading := res["reading"].(map[string]any)
	assert.Equal(t, "divergent", reading["status"])
	assert.Equal(t, "Divergencia de 10.0%", reading["note"])
	assert.Equal(t, "delivered", res["manifest"].(map[string]any)["status"])

	r := mustRun(t, dir, "readings", id)
	assert.Equal(t, "27500", r["netWeight"])

	_, err = run(t, dir, "weigh", id, "--gross", "26500", "--tare", "1500")
	assert.Error(t, err)
}

func TestCLI_ScanRejectsGarbage(t *testing.T) {
	_, err := run(t, t.TempDir(), "scan", "no es json")
	assert.Error(t, err)
}
