package domain

import (
	"testing"
	"time"
)

func TestMapsURL(t *testing.T) {
	listing := ListingResult{Title: "高堂中醫診所", PlaceID: "ChIJ123"}

	got := listing.MapsURL()
	want := "https://www.google.com/maps/place/?q=place_id:ChIJ123"
	if got != want {
		t.Errorf("MapsURL() = %s, want %s", got, want)
	}
}

func TestMapsURL_EmptyWithoutPlaceID(t *testing.T) {
	listing := ListingResult{Title: "高堂中醫診所"}

	if got := listing.MapsURL(); got != "" {
		t.Errorf("MapsURL() without place ID = %s, want empty", got)
	}
}

func TestDisplay(t *testing.T) {
	listing := ListingResult{Title: "仁心堂中醫", Rating: 4.2}

	if got := listing.Display(); got != "仁心堂中醫 (4.2⭐)" {
		t.Errorf("Display() = %s", got)
	}
}

func TestDisplay_RoundsRatingToOneDecimal(t *testing.T) {
	listing := ListingResult{Title: "回春中醫", Rating: 4}

	if got := listing.Display(); got != "回春中醫 (4.0⭐)" {
		t.Errorf("Display() = %s", got)
	}
}

func TestSelfFound(t *testing.T) {
	found := ScanResult{Self: IdentifiedListing{ListingResult: ListingResult{Position: 2}, IsSelf: true}}
	if !found.SelfFound() {
		t.Error("SelfFound() should be true for an observed position")
	}

	placeholder := ScanResult{Self: IdentifiedListing{ListingResult: ListingResult{Position: PositionBeyondPage}, IsSelf: true}}
	if placeholder.SelfFound() {
		t.Error("SelfFound() should be false for the beyond-page placeholder")
	}
}

func TestTopCompetitors_CapsAtAvailable(t *testing.T) {
	result := ScanResult{
		Competitors: []IdentifiedListing{
			{ListingResult: ListingResult{Title: "a", Position: 1}},
			{ListingResult: ListingResult{Title: "b", Position: 3}},
		},
	}

	if got := result.TopCompetitors(5); len(got) != 2 {
		t.Errorf("TopCompetitors(5) = %d entries, want 2", len(got))
	}
	if got := result.TopCompetitors(1); len(got) != 1 || got[0].Title != "a" {
		t.Errorf("TopCompetitors(1) = %v", got)
	}
}

func TestPageOrder_MergesSelfByPosition(t *testing.T) {
	result := ScanResult{
		Self: IdentifiedListing{ListingResult: ListingResult{Title: "高堂中醫診所", Position: 2}, IsSelf: true},
		Competitors: []IdentifiedListing{
			{ListingResult: ListingResult{Title: "仁心堂中醫", Position: 1}},
			{ListingResult: ListingResult{Title: "回春中醫", Position: 3}},
		},
		ScannedAt: time.Now(),
	}

	page := result.PageOrder()
	if len(page) != 3 {
		t.Fatalf("PageOrder() = %d entries, want 3", len(page))
	}

	titles := []string{page[0].Title, page[1].Title, page[2].Title}
	want := []string{"仁心堂中醫", "高堂中醫診所", "回春中醫"}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("PageOrder()[%d] = %s, want %s", i, titles[i], want[i])
		}
	}
	if !page[1].IsSelf {
		t.Error("self listing should keep its flag in page order")
	}
}

func TestPageOrder_ExcludesPlaceholderSelf(t *testing.T) {
	result := ScanResult{
		Self: IdentifiedListing{ListingResult: ListingResult{Title: "高堂中醫", Position: PositionBeyondPage}, IsSelf: true},
		Competitors: []IdentifiedListing{
			{ListingResult: ListingResult{Title: "仁心堂中醫", Position: 1}},
		},
	}

	page := result.PageOrder()
	if len(page) != 1 {
		t.Fatalf("PageOrder() = %d entries, want 1", len(page))
	}
	if page[0].IsSelf {
		t.Error("placeholder self should not appear in page order")
	}
}

func TestLocationValidate(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		wantErr  bool
	}{
		{
			name:     "valid",
			location: Location{Name: "高堂中醫", City: "台北", Latitude: 25.0330, Longitude: 121.5654},
			wantErr:  false,
		},
		{
			name:     "empty name",
			location: Location{Latitude: 25, Longitude: 121},
			wantErr:  true,
		},
		{
			name:     "latitude out of range",
			location: Location{Name: "x", Latitude: 91, Longitude: 121},
			wantErr:  true,
		},
		{
			name:     "longitude out of range",
			location: Location{Name: "x", Latitude: 25, Longitude: -181},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.location.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKeywordValidate(t *testing.T) {
	if err := Keyword("中醫診所").Validate(); err != nil {
		t.Errorf("valid keyword rejected: %v", err)
	}
	if err := Keyword("").Validate(); err == nil {
		t.Error("empty keyword should be rejected")
	}
}
