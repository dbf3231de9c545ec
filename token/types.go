/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Token types.
const (
	TypeDimension       = "dimension"
	TypeString          = "string"
	TypeNumber          = "number"
	TypeColor           = "color"
	TypeBoolean         = "boolean"
	TypeCustomSpacing   = "custom-spacing"
	TypeCustomGradient  = "custom-gradient"
	TypeCustomFontStyle = "custom-fontStyle"
	TypeCustomRadius    = "custom-radius"
	TypeCustomShadow    = "custom-shadow"
)

// Units.
const (
	UnitPixel   = "pixel"
	UnitPercent = "percent"
)
