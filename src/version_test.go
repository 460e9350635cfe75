package src_test

import (
	"testing"

	"infoslide/src"
)

func TestCheckSchemaVersion(t *testing.T) {
	testCases := []struct {
		name    string
		schema  string
		wantErr bool
	}{
		{name: "Current schema", schema: src.CurrentSchemaVersion, wantErr: false},
		{name: "Minor bump", schema: "1.4", wantErr: false},
		{name: "Patch bump", schema: "1.0.3", wantErr: false},
		{name: "Next major", schema: "2.0", wantErr: true},
		{name: "Older major", schema: "0.9", wantErr: true},
		{name: "Invalid", schema: "latest", wantErr: true},
		{name: "Empty", schema: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := src.CheckSchemaVersion(tc.schema)
			if (err != nil) != tc.wantErr {
				t.Errorf("CheckSchemaVersion(%q) error = %v, wantErr %v", tc.schema, err, tc.wantErr)
			}
		})
	}
}

func TestIsNewerSchema(t *testing.T) {
	testCases := []struct {
		name    string
		schema  string
		want    bool
		wantErr bool
	}{
		{name: "Same version", schema: "1.0", want: false},
		{name: "Minor bump", schema: "1.1", want: true},
		{name: "Major bump", schema: "2.0.0", want: true},
		{name: "Downgrade", schema: "0.9.9", want: false},
		{name: "Invalid", schema: "invalid", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := src.IsNewerSchema(tc.schema)
			if (err != nil) != tc.wantErr {
				t.Fatalf("IsNewerSchema() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("IsNewerSchema() = %v, want %v", got, tc.want)
			}
		})
	}
}
