package tools

import (
	"strings"
	"testing"
)

func TestValidateTravelMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{name: "driving", mode: "driving", wantErr: false},
		{name: "walking", mode: "walking", wantErr: false},
		{name: "bicycling", mode: "bicycling", wantErr: false},
		{name: "transit", mode: "transit", wantErr: false},
		{name: "unknown mode", mode: "flying", wantErr: true},
		{name: "empty", mode: "", wantErr: true},
		{name: "case sensitive", mode: "Driving", wantErr: true},
		{name: "whitespace", mode: " driving", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTravelMode(tt.mode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateTravelMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			// The message must name the offending value and the allowed set.
			msg := err.Error()
			if !strings.Contains(msg, "'"+tt.mode+"'") {
				t.Errorf("error %q does not name the offending value %q", msg, tt.mode)
			}
			for _, mode := range allowedTravelModes {
				if !strings.Contains(msg, mode) {
					t.Errorf("error %q does not name allowed mode %q", msg, mode)
				}
			}
		})
	}
}

func TestValidateQueryType(t *testing.T) {
	tests := []struct {
		name      string
		inputType string
		wantErr   bool
	}{
		{name: "textquery", inputType: "textquery", wantErr: false},
		{name: "phonenumber", inputType: "phonenumber", wantErr: false},
		{name: "unknown type", inputType: "voicequery", wantErr: true},
		{name: "empty", inputType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQueryType(tt.inputType)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateQueryType(%q) error = %v, wantErr %v", tt.inputType, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			msg := err.Error()
			if !strings.Contains(msg, "'"+tt.inputType+"'") {
				t.Errorf("error %q does not name the offending value %q", msg, tt.inputType)
			}
			for _, qt := range allowedQueryTypes {
				if !strings.Contains(msg, qt) {
					t.Errorf("error %q does not name allowed type %q", msg, qt)
				}
			}
		})
	}
}
