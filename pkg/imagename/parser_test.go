package imagename

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantOK   bool
		want     Parsed
	}{
		{
			name:     "with digit token",
			filename: "l61SK02085_03-2_AN_083058_LOWER_2_B_L_crop_SourceMap.jpg",
			wantOK:   true,
			want:     Parsed{CellKey: "l61SK02085_03-2_AN_083058", Region: "LOWER_B_L", MapType: MapTypeSource},
		},
		{
			name:     "without digit token",
			filename: "l61SK02085_03-2_AN_083058_LOWER_B_L_crop_SourceMap.jpg",
			wantOK:   true,
			want:     Parsed{CellKey: "l61SK02085_03-2_AN_083058", Region: "LOWER_B_L", MapType: MapTypeSource},
		},
		{
			name:     "upper right activemap",
			filename: "cell9_UPPER_3_B_R_ActiveMap.jpeg",
			wantOK:   true,
			want:     Parsed{CellKey: "cell9", Region: "UPPER_B_R", MapType: MapTypeActive},
		},
		{
			name:     "png extension",
			filename: "cell9_UPPER_B_L_SourceMap.png",
			wantOK:   true,
			want:     Parsed{CellKey: "cell9", Region: "UPPER_B_L", MapType: MapTypeSource},
		},
		{
			name:     "window fallback finds B pair",
			filename: "cell9_LOWER_x_B_R_SourceMap.jpg",
			wantOK:   true,
			want:     Parsed{CellKey: "cell9", Region: "LOWER_B_R", MapType: MapTypeSource},
		},
		{
			name:     "anchor first token falls back to full stem",
			filename: "LOWER_B_L_SourceMap.jpg",
			wantOK:   true,
			want:     Parsed{CellKey: "LOWER_B_L_SourceMap", Region: "LOWER_B_L", MapType: MapTypeSource},
		},
		{
			name:     "wrong extension",
			filename: "cell9_LOWER_B_L_SourceMap.tif",
			wantOK:   false,
		},
		{
			name:     "no map type marker",
			filename: "cell9_LOWER_B_L_Random.jpg",
			wantOK:   false,
		},
		{
			name:     "no anchor token",
			filename: "cell9_MIDDLE_B_L_SourceMap.jpg",
			wantOK:   false,
		},
		{
			name:     "B without side letter",
			filename: "cell9_LOWER_2_B_SourceMap.jpg",
			wantOK:   false,
		},
		{
			name:     "B pair outside window",
			filename: "cell9_LOWER_a_b_c_d_e_B_L_SourceMap.jpg",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.filename)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.filename, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.filename, got, tt.want)
			}
		})
	}
}

// The optional digit token must never change the extracted region.
func TestParseDigitTokenIsNonSemantic(t *testing.T) {
	variants := []string{
		"cellX_LOWER_B_R_SourceMap.jpg",
		"cellX_LOWER_2_B_R_SourceMap.jpg",
		"cellX_LOWER_7_B_R_SourceMap.jpg",
	}

	for _, name := range variants {
		got, ok := Parse(name)
		if !ok {
			t.Fatalf("Parse(%q) rejected", name)
		}
		if got.Region != "LOWER_B_R" {
			t.Errorf("Parse(%q).Region = %q, want LOWER_B_R", name, got.Region)
		}
		if got.CellKey != "cellX" {
			t.Errorf("Parse(%q).CellKey = %q, want cellX", name, got.CellKey)
		}
	}
}

func TestParseUsesBaseName(t *testing.T) {
	got, ok := Parse("some/dir/cell1_UPPER_B_L_SourceMap.jpg")
	if !ok {
		t.Fatal("Parse rejected path input")
	}
	if got.CellKey != "cell1" {
		t.Errorf("CellKey = %q, want cell1", got.CellKey)
	}
}
