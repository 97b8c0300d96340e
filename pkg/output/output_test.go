package output

import (
	"testing"
)

func TestGetOutputFormat(t *testing.T) {
	format := GetOutputFormat()
	if format != FormatJSON && format != FormatText && format != FormatTable {
		t.Errorf("Invalid output format: %v", format)
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		isValid bool
	}{
		{"json", true},
		{"text", true},
		{"table", true},
		{"yaml", false},
		{"", false},
	}

	for _, tt := range tests {
		result := ValidateOutputFormat(tt.format)
		if result != tt.isValid {
			t.Errorf("ValidateOutputFormat(%s): got %v, want %v", tt.format, result, tt.isValid)
		}
	}
}

func TestFormatAsJSON(t *testing.T) {
	data := map[string]interface{}{"key": "value"}

	result, err := FormatAsJSON(data)
	if err != nil {
		t.Fatalf("FormatAsJSON failed: %v", err)
	}
	if result != `{"key":"value"}` {
		t.Errorf("Unexpected JSON: %s", result)
	}
}

func TestFormatAsPrettyJSON(t *testing.T) {
	data := map[string]interface{}{"key": "value"}

	result, err := FormatAsPrettyJSON(data)
	if err != nil {
		t.Fatalf("FormatAsPrettyJSON failed: %v", err)
	}
	if len(result) <= len(`{"key":"value"}`) {
		t.Error("Pretty JSON should be indented")
	}
}

func TestPrintFunctions_NoPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Print function panicked: %v", r)
		}
	}()

	data := map[string]interface{}{
		"name": "test",
		"id":   123,
	}

	Print("Test Data", data)
	PrintRecord("Record", data)
	PrintSuccess("Operation completed")
	PrintError("Operation failed")
	PrintInfo("Heads up")
	PrintWarning("Careful")

	rows := [][]string{{"1", "alice"}, {"2", "bob"}}
	PrintList("Items", rows, []string{"ID", "Name"})
}
