package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringListUnmarshalArray(t *testing.T) {
	var l StringList
	if err := json.Unmarshal([]byte(`["Immunity","Energy"]`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual([]string(l), []string{"Immunity", "Energy"}) {
		t.Fatalf("unexpected list: %v", l)
	}
}

func TestStringListUnmarshalEmbeddedJSONString(t *testing.T) {
	var l StringList
	if err := json.Unmarshal([]byte(`"[\"Weight Loss\",\"Immunity\"]"`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual([]string(l), []string{"Weight Loss", "Immunity"}) {
		t.Fatalf("unexpected list: %v", l)
	}
}

func TestStringListUnmarshalCommaJoinedString(t *testing.T) {
	var l StringList
	if err := json.Unmarshal([]byte(`"sleep, stress ,energy"`), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual([]string(l), []string{"sleep", "stress", "energy"}) {
		t.Fatalf("unexpected list: %v", l)
	}
}

func TestStringListUnmarshalNullAndEmpty(t *testing.T) {
	var l StringList
	if err := json.Unmarshal([]byte(`null`), &l); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if l != nil {
		t.Fatalf("expected nil for null, got %v", l)
	}
	if err := json.Unmarshal([]byte(`""`), &l); err != nil {
		t.Fatalf("unmarshal empty string: %v", err)
	}
	if len(l) != 0 {
		t.Fatalf("expected empty list for empty string, got %v", l)
	}
}

func TestStringListMarshalNilAsEmptyArray(t *testing.T) {
	var l StringList
	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [], got %s", data)
	}
}

func TestStringListContainsIgnoresCase(t *testing.T) {
	l := StringList{"Immunity", "Heart Health"}
	if !l.Contains("immunity") || !l.Contains("HEART HEALTH") {
		t.Fatal("expected case-insensitive membership")
	}
	if l.Contains("sleep") {
		t.Fatal("unexpected membership")
	}
}
