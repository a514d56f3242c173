package pedigree

import (
	"testing"
	"time"
)

func TestTimeScan(t *testing.T) {
	expected := time.Unix(1705000000, 0)

	cases := []struct {
		name  string
		value interface{}
	}{
		{"int64 unixtime", int64(1705000000)},
		{"int unixtime", int(1705000000)},
		{"text unixtime", []byte("1705000000")},
		{"string unixtime", "1705000000"},
		{"padded text unixtime", []byte(" 1705000000 ")},
	}
	for _, c := range cases {
		var got Time
		if err := got.Scan(c.value); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if !time.Time(got).Equal(expected) {
			t.Errorf("%s: got %v, expected %v", c.name, time.Time(got), expected)
		}
	}
}

func TestTimeScanDatetimeText(t *testing.T) {
	var got Time
	if err := got.Scan([]byte("2024-01-11 19:06:40")); err != nil {
		t.Fatal(err)
	}

	expected := time.Date(2024, 1, 11, 19, 6, 40, 0, time.UTC)
	if !time.Time(got).Equal(expected) {
		t.Errorf("Got %v, expected %v", time.Time(got), expected)
	}
}

func TestTimeScanRejectsUndecodableValues(t *testing.T) {
	var got Time
	if err := got.Scan([]byte("not a time")); err == nil {
		t.Error("Expected an error for undecodable text")
	}
	if err := got.Scan(3.14); err == nil {
		t.Error("Expected an error for an unsupported type")
	}
}

func TestTimeValueRoundTrip(t *testing.T) {
	original := Time(time.Unix(1705000000, 0))

	v, err := original.Value()
	if err != nil {
		t.Fatal(err)
	}

	var got Time
	if err := got.Scan(v); err != nil {
		t.Fatal(err)
	}
	if !time.Time(got).Equal(time.Time(original)) {
		t.Errorf("Got %v, expected %v", time.Time(got), time.Time(original))
	}
}
