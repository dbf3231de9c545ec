/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import "slices"

// Builtins returns the built-in transforms.
func Builtins() []Transform {
	return []Transform{
		AttributeCTI,
		NameKebab,
		NameSnake,
		SizePx,
		SizePercent,
		SizeDp,
		ColorRGB,
		ColorHex,
		ColorHex8Android,
		ShadowCSS,
	}
}

var webGroup = []string{
	AttributeCTI.Name,
	NameKebab.Name,
	SizePx.Name,
	SizePercent.Name,
	ShadowCSS.Name,
}

// Groups returns the built-in transform groups by name.
// color/rgb belongs to no group: the CSS emitter derives RGB companions itself.
func Groups() map[string][]string {
	return map[string][]string{
		"custom/css": slices.Clone(webGroup),
		"css":        slices.Clone(webGroup),
		"scss":       slices.Clone(webGroup),
		"less":       slices.Clone(webGroup),
		"js": {
			AttributeCTI.Name,
			NameKebab.Name,
			SizePx.Name,
			SizePercent.Name,
			ColorHex.Name,
		},
		"android": {
			AttributeCTI.Name,
			NameSnake.Name,
			SizeDp.Name,
			ColorHex8Android.Name,
		},
	}
}
