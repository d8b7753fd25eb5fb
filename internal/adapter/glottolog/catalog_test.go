package glottolog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const languoidsCSV = `ID,Name,ISO639P3code,Macroareas,Latitude,Longitude
chuk1273,Chukchi,ckt,Eurasia,67.1266,-173.1243
utee1244,Ute-Southern Paiute,ute,North America,38.0,-110.0
bezh1248,Bezhta,kap,,,
`

func writeExport(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, LanguoidsFile)
	if err := os.WriteFile(path, []byte(languoidsCSV), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	return dir
}

func TestOpen_File(t *testing.T) {
	t.Parallel()

	dir := writeExport(t)
	cat, err := Open(filepath.Join(dir, LanguoidsFile))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cat.Len())
	}
}

func TestOpen_Directory(t *testing.T) {
	t.Parallel()

	cat, err := Open(writeExport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cat.Len())
	}
}

func TestOpen_MissingPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestOpen_BadCoordinate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "languoids.csv")
	content := "ID,Name,ISO639P3code,Macroareas,Latitude,Longitude\nchuk1273,Chukchi,ckt,Eurasia,north,0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write export: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for unparseable latitude")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	cat, err := Open(writeExport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	languoid, ok := cat.Resolve("chuk1273")
	if !ok {
		t.Fatal("Resolve(chuk1273) not found")
	}
	if languoid.Name != "Chukchi" || languoid.ISO639P3code != "ckt" {
		t.Errorf("unexpected languoid: %+v", languoid)
	}
	if !reflect.DeepEqual(languoid.Macroareas, []string{"Eurasia"}) {
		t.Errorf("Macroareas = %v", languoid.Macroareas)
	}
	if languoid.Latitude == nil || *languoid.Latitude != 67.1266 {
		t.Errorf("Latitude = %v", languoid.Latitude)
	}
	if languoid.PrimaryMacroarea() != "Eurasia" {
		t.Errorf("PrimaryMacroarea() = %q", languoid.PrimaryMacroarea())
	}
}

func TestResolve_NoCoordinatesNoMacroarea(t *testing.T) {
	t.Parallel()

	cat, err := Open(writeExport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	languoid, ok := cat.Resolve("bezh1248")
	if !ok {
		t.Fatal("Resolve(bezh1248) not found")
	}
	if languoid.Latitude != nil || languoid.Longitude != nil {
		t.Errorf("coordinates = %v, %v, want nil", languoid.Latitude, languoid.Longitude)
	}
	if languoid.PrimaryMacroarea() != "" {
		t.Errorf("PrimaryMacroarea() = %q, want empty", languoid.PrimaryMacroarea())
	}
}

func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	cat, err := Open(writeExport(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cat.Resolve("nope1234"); ok {
		t.Fatal("Resolve(nope1234) found, want not found")
	}
}
