package catalog

import (
	"reflect"
	"testing"

	"github.com/aerotools/catalogd/internal/domain"
)

func TestExportImportRoundTrip(t *testing.T) {
	items := domain.DefaultCatalog()

	data, err := ExportDocument(items)
	if err != nil {
		t.Fatal(err)
	}
	back, err := ImportDocument(data)
	if err != nil {
		t.Fatalf("re-import failed: %v", err)
	}
	if !reflect.DeepEqual(items, back) {
		t.Error("round trip is not field-for-field identical")
	}
}

func TestDecodeDocumentParseError(t *testing.T) {
	_, err := DecodeDocument([]byte(`{"id": "BR-`))
	ie, ok := err.(*ImportError)
	if !ok || ie.Reason != ReasonParse {
		t.Fatalf("err = %v, want ImportError/%s", err, ReasonParse)
	}
}

func TestDecodeDocumentShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"object instead of array", `{"not": "an array"}`},
		{"scalar element", `[42]`},
		{"missing id", `[{"slug":"s","name":"n","category":"towing"}]`},
		{"blank slug", `[{"id":"BR-1","slug":"  ","name":"n","category":"towing"}]`},
		{"numeric name", `[{"id":"BR-1","slug":"s","name":7,"category":"towing"}]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(c.doc))
			ie, ok := err.(*ImportError)
			if !ok || ie.Reason != ReasonShape {
				t.Fatalf("err = %v, want ImportError/%s", err, ReasonShape)
			}
		})
	}
}

func TestImportDocumentRejectsInvalidRecords(t *testing.T) {
	doc := `[
	  {"id":"BR-1","slug":"barre-un","name":"Barre un","category":"towing","description":"ok","priceRange":"low"},
	  {"id":"BR-2","slug":"barre-deux","name":"Barre deux","category":"spares","description":"ok","priceRange":"low"}
	]`
	_, err := ImportDocument([]byte(doc))
	ie, ok := err.(*ImportError)
	if !ok || ie.Reason != ReasonInvalid {
		t.Fatalf("err = %v, want ImportError/%s", err, ReasonInvalid)
	}
	if _, bad := ie.Records[1]; !bad {
		t.Errorf("record 1 not reported: %v", ie.Records)
	}
	if _, good := ie.Records[0]; good {
		t.Errorf("record 0 wrongly reported: %v", ie.Records)
	}
}

func TestImportDocumentRejectsDuplicateKeys(t *testing.T) {
	doc := `[
	  {"id":"BR-1","slug":"barre-un","name":"Barre un","category":"towing","description":"ok","priceRange":"low"},
	  {"id":"BR-1","slug":"barre-un","name":"Barre bis","category":"towing","description":"ok","priceRange":"low"}
	]`
	_, err := ImportDocument([]byte(doc))
	ie, ok := err.(*ImportError)
	if !ok || ie.Reason != ReasonInvalid {
		t.Fatalf("err = %v, want ImportError/%s", err, ReasonInvalid)
	}
	errs := ie.Records[1]
	if errs["id"] == "" || errs["slug"] == "" {
		t.Errorf("duplicate keys not flagged: %v", errs)
	}
}
