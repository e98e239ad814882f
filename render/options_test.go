// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "testing"

func TestOptions_MergeWith(t *testing.T) {
	tests := []struct {
		name   string
		child  Options
		parent Options
		want   Options
	}{
		{
			name:   "all unset inherits everything",
			child:  Options{},
			parent: Options{EdgeMode: EdgeModeAliased, TextRenderingMode: TextRenderingAntialias},
			want:   Options{EdgeMode: EdgeModeAliased, TextRenderingMode: TextRenderingAntialias},
		},
		{
			name:   "set fields win over parent",
			child:  Options{EdgeMode: EdgeModeAntialias},
			parent: Options{EdgeMode: EdgeModeAliased, BitmapBlending: BitmapBlendingPlus},
			want:   Options{EdgeMode: EdgeModeAntialias, BitmapBlending: BitmapBlendingPlus},
		},
		{
			name:   "empty parent changes nothing",
			child:  Options{BitmapInterpolation: BitmapInterpolationHighQuality},
			parent: Options{},
			want:   Options{BitmapInterpolation: BitmapInterpolationHighQuality},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.child.MergeWith(tt.parent)
			if got.EdgeMode != tt.want.EdgeMode {
				t.Errorf("EdgeMode = %v, want %v", got.EdgeMode, tt.want.EdgeMode)
			}
			if got.BitmapInterpolation != tt.want.BitmapInterpolation {
				t.Errorf("BitmapInterpolation = %v, want %v", got.BitmapInterpolation, tt.want.BitmapInterpolation)
			}
			if got.TextRenderingMode != tt.want.TextRenderingMode {
				t.Errorf("TextRenderingMode = %v, want %v", got.TextRenderingMode, tt.want.TextRenderingMode)
			}
			if got.BitmapBlending != tt.want.BitmapBlending {
				t.Errorf("BitmapBlending = %v, want %v", got.BitmapBlending, tt.want.BitmapBlending)
			}
		})
	}
}

func TestOptions_MergeWith_FullOpacityTriState(t *testing.T) {
	explicitFalse := Options{RequiresFullOpacity: FullOpacity(false)}
	parentTrue := Options{RequiresFullOpacity: FullOpacity(true)}

	// An explicit false is a set value and must not be overridden.
	got := explicitFalse.MergeWith(parentTrue)
	if got.RequiresFullOpacity == nil || *got.RequiresFullOpacity {
		t.Error("explicit false was overridden by parent")
	}

	// Unset inherits the parent's pointer value.
	got = Options{}.MergeWith(parentTrue)
	if got.RequiresFullOpacity == nil || !*got.RequiresFullOpacity {
		t.Error("unset field did not inherit parent's true")
	}
}

func TestOptions_MergeWith_DoesNotMutate(t *testing.T) {
	child := Options{}
	parent := Options{EdgeMode: EdgeModeAliased}
	_ = child.MergeWith(parent)
	if child.EdgeMode != EdgeModeUnset {
		t.Error("MergeWith mutated the receiver")
	}
}

func TestOptions_Fingerprint(t *testing.T) {
	base := Options{EdgeMode: EdgeModeAntialias}

	if base.Fingerprint() != base.Fingerprint() {
		t.Error("Fingerprint is not deterministic")
	}

	same := Options{EdgeMode: EdgeModeAntialias}
	if base.Fingerprint() != same.Fingerprint() {
		t.Error("equal options produced different fingerprints")
	}

	variants := []Options{
		{},
		{EdgeMode: EdgeModeAliased},
		{EdgeMode: EdgeModeAntialias, TextRenderingMode: TextRenderingAliased},
		{EdgeMode: EdgeModeAntialias, RequiresFullOpacity: FullOpacity(false)},
		{EdgeMode: EdgeModeAntialias, RequiresFullOpacity: FullOpacity(true)},
	}
	for i, v := range variants {
		if v.Fingerprint() == base.Fingerprint() {
			t.Errorf("variant %d collided with the base fingerprint", i)
		}
	}

	// Pointer identity must not matter, only the pointed-to value.
	a := Options{RequiresFullOpacity: FullOpacity(true)}
	b := Options{RequiresFullOpacity: FullOpacity(true)}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("distinct pointers to equal values produced different fingerprints")
	}
}

func TestEnumStrings(t *testing.T) {
	if got := EdgeModeAliased.String(); got != "aliased" {
		t.Errorf("EdgeModeAliased.String() = %q, want %q", got, "aliased")
	}
	if got := EdgeMode(99).String(); got != "unset" {
		t.Errorf("unknown EdgeMode.String() = %q, want %q", got, "unset")
	}
	if got := BitmapInterpolationMediumQuality.String(); got != "medium" {
		t.Errorf("BitmapInterpolationMediumQuality.String() = %q, want %q", got, "medium")
	}
}
