package dict

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestFromMapDefaults(t *testing.T) {
	d := FromMap(map[string]Entry{
		"café da manhã": {},
		"de acordo com": {Lemma: "de acordo com", POS: "ADP", Type: TypeFixed},
		"":              {Lemma: "ignored"},
	})

	if len(d) != 2 {
		t.Fatalf("len = %d, want 2 (empty surface dropped)", len(d))
	}

	got := d["café da manhã"]
	want := Entry{Lemma: "café da manhã", POS: "X", Type: TypeFixed}
	if got != want {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mwe_database.json")
	content := `{
		"café da manhã": {"lemma": "café da manhã", "pos": "NOUN", "type": "fixed"},
		"fim de semana": {"pos": "NOUN"}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d := FromFile(path, discard())
	if len(d) != 2 {
		t.Fatalf("len = %d, want 2", len(d))
	}
	if d["fim de semana"].Lemma != "fim de semana" {
		t.Errorf("lemma default not applied: %+v", d["fim de semana"])
	}
}

func TestFromFileMissing(t *testing.T) {
	d := FromFile(filepath.Join(t.TempDir(), "nope.json"), discard())
	if len(d) != 0 {
		t.Errorf("missing file must load empty, got %d entries", len(d))
	}
}

func TestFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := FromFile(path, discard())
	if len(d) != 0 {
		t.Errorf("malformed file must load empty, got %d entries", len(d))
	}
}

func TestOverridesLowercased(t *testing.T) {
	o := OverridesFromMap(map[string]string{"Cafés": "Café", "FORAM": "Ser"})
	want := map[string]string{"cafés": "café", "foram": "ser"}
	if !reflect.DeepEqual(map[string]string(o), want) {
		t.Errorf("got %v, want %v", o, want)
	}
}

func TestOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lemma_dict.json")
	if err := os.WriteFile(path, []byte(`{"Flores": "Flor"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	o := OverridesFromFile(path, discard())
	if o["flores"] != "flor" {
		t.Errorf("got %v", o)
	}

	if n := len(OverridesFromFile(filepath.Join(t.TempDir(), "nope.json"), discard())); n != 0 {
		t.Errorf("missing file must load empty, got %d", n)
	}
}

func TestStats(t *testing.T) {
	d := FromMap(map[string]Entry{
		"café da manhã":  {POS: "NOUN", Type: TypeFixed},
		"fim de semana":  {POS: "NOUN", Type: TypeFixed},
		"de manhã":       {POS: "ADV", Type: TypeFixed},
		"guarda-chuva x": {POS: "NOUN", Type: TypeCompound},
	})

	s := d.Stats()
	if s.TotalExpressions != 4 {
		t.Errorf("total = %d", s.TotalExpressions)
	}
	if !reflect.DeepEqual(s.LengthDistribution, map[int]int{2: 2, 3: 2}) {
		t.Errorf("length distribution = %v", s.LengthDistribution)
	}
	if !reflect.DeepEqual(s.POSDistribution, map[string]int{"NOUN": 3, "ADV": 1}) {
		t.Errorf("pos distribution = %v", s.POSDistribution)
	}
	if !reflect.DeepEqual(s.TypeDistribution, map[string]int{TypeFixed: 3, TypeCompound: 1}) {
		t.Errorf("type distribution = %v", s.TypeDistribution)
	}
}

func TestStatsEmpty(t *testing.T) {
	s := Dictionary{}.Stats()
	if s.TotalExpressions != 0 || len(s.LengthDistribution) != 0 {
		t.Errorf("empty stats = %+v", s)
	}
}

func TestClone(t *testing.T) {
	d := FromMap(map[string]Entry{"de manhã": {POS: "ADV"}})
	c := d.Clone()
	c["nova entrada"] = Entry{}
	if _, ok := d["nova entrada"]; ok {
		t.Error("clone shares storage with original")
	}
}
