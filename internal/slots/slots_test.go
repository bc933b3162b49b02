package slots

import (
	"testing"
	"time"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{"standard slot", "08:00-10:00", "08:00", "10:00", false},
		{"afternoon slot", "14:00-16:00", "14:00", "16:00", false},
		{"spaces around dash", "08:00 - 10:00", "08:00", "10:00", false},
		{"missing dash", "0800 1000", "", "", true},
		{"bad clock", "8am-10am", "", "", true},
		{"empty", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseLabel(tt.label)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLabel(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("ParseLabel(%q) = %q, %q, want %q, %q", tt.label, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestBoundStrings(t *testing.T) {
	start, end, err := BoundStrings("2024-06-01", "10:00-12:00", time.UTC)
	if err != nil {
		t.Fatalf("BoundStrings() error = %v", err)
	}
	if start != "2024-06-01T10:00:00" {
		t.Errorf("start = %q, want 2024-06-01T10:00:00", start)
	}
	if end != "2024-06-01T12:00:00" {
		t.Errorf("end = %q, want 2024-06-01T12:00:00", end)
	}
}

func TestBoundsRejectsBadInput(t *testing.T) {
	if _, _, err := Bounds("June 1st", "10:00-12:00", time.UTC); err == nil {
		t.Error("Bounds() with bad date succeeded, want error")
	}
	if _, _, err := Bounds("2024-06-01", "morning", time.UTC); err == nil {
		t.Error("Bounds() with bad label succeeded, want error")
	}
}

func TestBoundsUsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	start, _, err := Bounds("2024-06-01", "08:00-10:00", loc)
	if err != nil {
		t.Fatal(err)
	}
	if start.Location() != loc {
		t.Errorf("start location = %v, want %v", start.Location(), loc)
	}
	if start.Hour() != 8 {
		t.Errorf("start hour = %d, want 8 (wall clock in target zone)", start.Hour())
	}
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		wantLen int
		wantErr bool
	}{
		{"default when empty", nil, 5, false},
		{"custom catalog", []string{"09:00-11:00", "11:00-13:00"}, 2, false},
		{"invalid label rejected", []string{"09:00-11:00", "lunch"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCatalog(tt.labels)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && c.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
		})
	}
}

func TestCatalogOrderAndContains(t *testing.T) {
	c, err := NewCatalog([]string{"08:00-10:00", "10:00-12:00"})
	if err != nil {
		t.Fatal(err)
	}
	if c.At(0) != "08:00-10:00" || c.At(1) != "10:00-12:00" {
		t.Errorf("catalog order not preserved: %v", c.Labels())
	}
	if !c.Contains("10:00-12:00") {
		t.Error("Contains() = false for a catalog label")
	}
	if c.Contains("16:00-18:00") {
		t.Error("Contains() = true for a label outside the catalog")
	}
}

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{"empty string returns local", "", false},
		{"Local returns local", "Local", false},
		{"valid timezone UTC", "UTC", false},
		{"invalid timezone", "Invalid/Timezone", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && loc == nil {
				t.Error("LoadLocation() returned nil location without error")
			}
		})
	}
}
