package domain

import (
	"errors"
	"math"
	"testing"
)

func TestNewCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		wantErr  bool
	}{
		{name: "origin", lat: 0, lon: 0},
		{name: "bounds", lat: -90, lon: 180},
		{name: "sao paulo", lat: -23.5505, lon: -46.6333},
		{name: "lat too high", lat: 90.0001, lon: 0, wantErr: true},
		{name: "lon too low", lat: 0, lon: -180.5, wantErr: true},
		{name: "nan", lat: math.NaN(), lon: 0, wantErr: true},
		{name: "inf", lat: 0, lon: math.Inf(1), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewCoordinates(tc.lat, tc.lon)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidData) {
					t.Fatalf("err = %v, want ErrInvalidData", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Lat != tc.lat || c.Lon != tc.lon {
				t.Errorf("got %+v, want lat=%v lon=%v", c, tc.lat, tc.lon)
			}
		})
	}
}

func TestParseCoordinates(t *testing.T) {
	c, err := ParseCoordinates("-23.5613", "-46.6565")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Lat != -23.5613 || c.Lon != -46.6565 {
		t.Errorf("got %+v", c)
	}

	for _, in := range [][2]string{{"abc", "1"}, {"1", ""}, {"NaN", "0"}, {"95", "0"}} {
		if _, err := ParseCoordinates(in[0], in[1]); !errors.Is(err, ErrInvalidData) {
			t.Errorf("ParseCoordinates(%q, %q) err = %v, want ErrInvalidData", in[0], in[1], err)
		}
	}
}

func TestCoordsToListIsLonLat(t *testing.T) {
	got := Coordinates{Lat: 10, Lon: 20}.CoordsToList()
	if len(got) != 2 || got[0] != 20 || got[1] != 10 {
		t.Fatalf("CoordsToList = %v, want [20 10]", got)
	}
}

func TestFirstMatchStrategy(t *testing.T) {
	var s Selector[int] = FirstMatchStrategy[int]{}

	if _, ok := s.Select(nil); ok {
		t.Fatal("expected no selection from empty list")
	}

	got, ok := s.Select([]int{7, 3, 9})
	if !ok || got != 7 {
		t.Fatalf("Select = %d, %v; want 7, true", got, ok)
	}
}
