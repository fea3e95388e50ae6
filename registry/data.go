package registry

// licenses is the generated-style license table. Entries are not required
// to be sorted; lookup goes through the lowercase map built in init().
var licenses = []licenseEntry{
	{name: "NOASSERTION", fullName: "No assertion made about licensing", isSentinel: true},
	{name: "NONE", fullName: "No license information provided", isSentinel: true},

	// Permissive, unversioned.
	{name: "MIT", fullName: "MIT License", osiApproved: true, fsfLibre: true, base: "MIT"},
	{name: "ISC", fullName: "ISC License", osiApproved: true, fsfLibre: true, base: "ISC"},
	{name: "Zlib", fullName: "zlib License", osiApproved: true, fsfLibre: true, base: "Zlib"},
	{name: "Unlicense", fullName: "The Unlicense", osiApproved: true, fsfLibre: true, base: "Unlicense"},
	{name: "X11", fullName: "X11 License", fsfLibre: true, base: "X11"},
	{name: "WTFPL", fullName: "Do What The F*ck You Want To Public License", fsfLibre: true, base: "WTFPL"},
	{name: "MITNFA", fullName: "MIT +no-false-attribs license", base: "MITNFA"},
	{name: "0BSD", fullName: "BSD Zero Clause License", osiApproved: true, base: "0BSD"},
	{name: "Beerware", fullName: "Beerware License", base: "Beerware"},
	{name: "BSL-1.0", fullName: "Boost Software License 1.0", osiApproved: true, fsfLibre: true, base: "BSL", verMajor: 1, hasVersion: true},
	{name: "CC0-1.0", fullName: "Creative Commons Zero v1.0 Universal", fsfLibre: true, base: "CC0", verMajor: 1, hasVersion: true},

	// BSD family.
	{name: "BSD-2-Clause", fullName: "BSD 2-Clause \"Simplified\" License", osiApproved: true, fsfLibre: true, base: "BSD-2-Clause"},
	{name: "BSD-3-Clause", fullName: "BSD 3-Clause \"New\" or \"Revised\" License", osiApproved: true, fsfLibre: true, base: "BSD-3-Clause"},
	{name: "BSD-4-Clause", fullName: "BSD 4-Clause \"Original\" or \"Old\" License", fsfLibre: true, base: "BSD-4-Clause"},
	{name: "BSD-3-Clause-Clear", fullName: "BSD 3-Clause Clear License", base: "BSD-3-Clause-Clear"},

	// Apache.
	{name: "Apache-1.1", fullName: "Apache License 1.1", osiApproved: true, base: "Apache", verMajor: 1, verMinor: 1, hasVersion: true},
	{name: "Apache-2.0", fullName: "Apache License 2.0", osiApproved: true, fsfLibre: true, base: "Apache", verMajor: 2, hasVersion: true},

	// Weak copyleft / limited copyleft, non-GNU.
	{name: "MPL-1.1", fullName: "Mozilla Public License 1.1", osiApproved: true, copyleft: true, base: "MPL", verMajor: 1, verMinor: 1, hasVersion: true},
	{name: "MPL-2.0", fullName: "Mozilla Public License 2.0", osiApproved: true, fsfLibre: true, copyleft: true, base: "MPL", verMajor: 2, hasVersion: true},
	{name: "EPL-1.0", fullName: "Eclipse Public License 1.0", osiApproved: true, copyleft: true, base: "EPL", verMajor: 1, hasVersion: true},
	{name: "EPL-2.0", fullName: "Eclipse Public License 2.0", osiApproved: true, copyleft: true, base: "EPL", verMajor: 2, hasVersion: true},
	{name: "CDDL-1.0", fullName: "Common Development and Distribution License 1.0", osiApproved: true, copyleft: true, base: "CDDL", verMajor: 1, hasVersion: true},
	{name: "CDDL-1.1", fullName: "Common Development and Distribution License 1.1", copyleft: true, base: "CDDL", verMajor: 1, verMinor: 1, hasVersion: true},

	// Other versioned licenses (exercise the same-or-later "+" rule).
	{name: "PSF-2.0", fullName: "Python Software Foundation License 2.0", osiApproved: true, fsfLibre: true, base: "PSF", verMajor: 2, hasVersion: true},
	{name: "Python-2.0", fullName: "Python License 2.0", osiApproved: true, fsfLibre: true, base: "Python", verMajor: 2, hasVersion: true},
	{name: "Artistic-1.0", fullName: "Artistic License 1.0", base: "Artistic", verMajor: 1, hasVersion: true},
	{name: "Artistic-2.0", fullName: "Artistic License 2.0", osiApproved: true, fsfLibre: true, base: "Artistic", verMajor: 2, hasVersion: true},
	{name: "OFL-1.0", fullName: "SIL Open Font License 1.0", base: "OFL", verMajor: 1, hasVersion: true},
	{name: "OFL-1.1", fullName: "SIL Open Font License 1.1", osiApproved: true, fsfLibre: true, base: "OFL", verMajor: 1, verMinor: 1, hasVersion: true},
	{name: "CC-BY-3.0", fullName: "Creative Commons Attribution 3.0", base: "CC-BY", verMajor: 3, hasVersion: true},
	{name: "CC-BY-4.0", fullName: "Creative Commons Attribution 4.0", base: "CC-BY", verMajor: 4, hasVersion: true},

	// GPL.
	{name: "GPL-1.0", fullName: "GNU General Public License v1.0 only", deprecated: true, copyleft: true, gnuRoot: "GPL", gnuVariant: VariantNone, base: "GPL-1.0", verMajor: 1, hasVersion: true},
	{name: "GPL-1.0-only", fullName: "GNU General Public License v1.0 only", copyleft: true, gnuRoot: "GPL", gnuVariant: VariantOnly, base: "GPL-1.0", verMajor: 1, hasVersion: true},
	{name: "GPL-1.0-or-later", fullName: "GNU General Public License v1.0 or later", fsfLibre: true, copyleft: true, gnuRoot: "GPL", gnuVariant: VariantOrLater, base: "GPL-1.0", verMajor: 1, hasVersion: true},
	{name: "GPL-2.0", fullName: "GNU General Public License v2.0 only", deprecated: true, copyleft: true, gnuRoot: "GPL", gnuVariant: VariantNone, base: "GPL-2.0", verMajor: 2, hasVersion: true},
	{name: "GPL-2.0-only", fullName: "GNU General Public License v2.0 only", osiApproved: true, copyleft: true, gnuRoot: "GPL", gnuVariant: VariantOnly, base: "GPL-2.0", verMajor: 2, hasVersion: true},
	{name: "GPL-2.0-or-later", fullName: "GNU General Public License v2.0 or later", osiApproved: true, fsfLibre: true, copyleft: true, gnuRoot: "GPL", gnuVariant: VariantOrLater, base: "GPL-2.0", verMajor: 2, hasVersion: true},
	{name: "GPL-3.0", fullName: "GNU General Public License v3.0 only", deprecated: true, copyleft: true, gnuRoot: "GPL", gnuVariant: VariantNone, base: "GPL-3.0", verMajor: 3, hasVersion: true},
	{name: "GPL-3.0-only", fullName: "GNU General Public License v3.0 only", osiApproved: true, fsfLibre: true, copyleft: true, gnuRoot: "GPL", gnuVariant: VariantOnly, base: "GPL-3.0", verMajor: 3, hasVersion: true},
	{name: "GPL-3.0-or-later", fullName: "GNU General Public License v3.0 or later", osiApproved: true, fsfLibre: true, copyleft: true, gnuRoot: "GPL", gnuVariant: VariantOrLater, base: "GPL-3.0", verMajor: 3, hasVersion: true},

	// LGPL.
	{name: "LGPL-2.0", fullName: "GNU Library General Public License v2 only", deprecated: true, copyleft: true, gnuRoot: "LGPL", gnuVariant: VariantNone, base: "LGPL-2.0", verMajor: 2, hasVersion: true},
	{name: "LGPL-2.0-only", fullName: "GNU Library General Public License v2 only", osiApproved: true, copyleft: true, gnuRoot: "LGPL", gnuVariant: VariantOnly, base: "LGPL-2.0", verMajor: 2, hasVersion: true},
	{name: "LGPL-2.0-or-later", fullName: "GNU Library General Public License v2 or later", osiApproved: true, fsfLibre: true, copyleft: true, gnuRoot: "LGPL", gnuVariant: VariantOrLater, base: "LGPL-2.0", verMajor: 2, hasVersion: true},
	{name: "LGPL-2.1", fullName: "GNU Lesser General Public License v2.1 only", deprecated: true, copyleft: true, gnuRoot: "LGPL", gnuVariant: VariantNone, base: "LGPL-2.1", verMajor: 2, verMinor: 1, hasVersion: true},
	{name: "LGPL-2.1-only", fullName: "GNU Lesser General Public License v2.1 only", osiApproved: true, copyleft: true, gnuRoot: "LGPL", gnuVariant: VariantOnly, base: "LGPL-2.1", verMajor: 2, verMinor: 1, hasVersion: true},
	{name: "LGPL-2.1-or-later", fullName: "GNU Lesser General Public License v2.1 or later", osiApproved: true, fsfLibre: true, copyleft: true, gnuRoot: "LGPL", gnuVariant: VariantOrLater, base: "LGPL-2.1", verMajor: 2, verMinor: 1, hasVersion: true},
	{name: "LGPL-3.0", fullName: "GNU Lesser General Public License v3.0 only", deprecated: true, copyleft: true, gnuRoot: "LGPL", gnuVariant: VariantNone, base: "LGPL-3.0", verMajor: 3, hasVersion: true},
	{name: "LGPL-3.0-only", fullName: "GNU Lesser General Public License v3.0 only", osiApproved: true, copyleft: true, gnuRoot: "LGPL", gnuVariant: VariantOnly, base: "LGPL-3.0", verMajor: 3, hasVersion: true},
	{name: "LGPL-3.0-or-later", fullName: "GNU Lesser General Public License v3.0 or later", osiApproved: true, fsfLibre: true, copyleft: true, gnuRoot: "LGPL", gnuVariant: VariantOrLater, base: "LGPL-3.0", verMajor: 3, hasVersion: true},

	// AGPL.
	{name: "AGPL-1.0", fullName: "Affero General Public License v1.0", deprecated: true, copyleft: true, gnuRoot: "AGPL", gnuVariant: VariantNone, base: "AGPL-1.0", verMajor: 1, hasVersion: true},
	{name: "AGPL-1.0-only", fullName: "Affero General Public License v1.0 only", copyleft: true, gnuRoot: "AGPL", gnuVariant: VariantOnly, base: "AGPL-1.0", verMajor: 1, hasVersion: true},
	{name: "AGPL-1.0-or-later", fullName: "Affero General Public License v1.0 or later", copyleft: true, gnuRoot: "AGPL", gnuVariant: VariantOrLater, base: "AGPL-1.0", verMajor: 1, hasVersion: true},
	{name: "AGPL-3.0", fullName: "GNU Affero General Public License v3.0 only", deprecated: true, copyleft: true, gnuRoot: "AGPL", gnuVariant: VariantNone, base: "AGPL-3.0", verMajor: 3, hasVersion: true},
	{name: "AGPL-3.0-only", fullName: "GNU Affero General Public License v3.0 only", osiApproved: true, copyleft: true, gnuRoot: "AGPL", gnuVariant: VariantOnly, base: "AGPL-3.0", verMajor: 3, hasVersion: true},
	{name: "AGPL-3.0-or-later", fullName: "GNU Affero General Public License v3.0 or later", osiApproved: true, fsfLibre: true, copyleft: true, gnuRoot: "AGPL", gnuVariant: VariantOrLater, base: "AGPL-3.0", verMajor: 3, hasVersion: true},

	// GFDL. Historically distinct from the other GNU roots (§4.4): kept in
	// its own table rows rather than inferred from GPL/LGPL/AGPL version
	// arithmetic.
	{name: "GFDL-1.1", fullName: "GNU Free Documentation License v1.1", deprecated: true, gnuRoot: "GFDL", gnuVariant: VariantNone, base: "GFDL-1.1", verMajor: 1, verMinor: 1, hasVersion: true},
	{name: "GFDL-1.1-only", fullName: "GNU Free Documentation License v1.1 only", gnuRoot: "GFDL", gnuVariant: VariantOnly, base: "GFDL-1.1", verMajor: 1, verMinor: 1, hasVersion: true},
	{name: "GFDL-1.1-or-later", fullName: "GNU Free Documentation License v1.1 or later", fsfLibre: true, gnuRoot: "GFDL", gnuVariant: VariantOrLater, base: "GFDL-1.1", verMajor: 1, verMinor: 1, hasVersion: true},
	{name: "GFDL-1.2", fullName: "GNU Free Documentation License v1.2", deprecated: true, gnuRoot: "GFDL", gnuVariant: VariantNone, base: "GFDL-1.2", verMajor: 1, verMinor: 2, hasVersion: true},
	{name: "GFDL-1.2-only", fullName: "GNU Free Documentation License v1.2 only", gnuRoot: "GFDL", gnuVariant: VariantOnly, base: "GFDL-1.2", verMajor: 1, verMinor: 2, hasVersion: true},
	{name: "GFDL-1.2-or-later", fullName: "GNU Free Documentation License v1.2 or later", fsfLibre: true, gnuRoot: "GFDL", gnuVariant: VariantOrLater, base: "GFDL-1.2", verMajor: 1, verMinor: 2, hasVersion: true},
	{name: "GFDL-1.3", fullName: "GNU Free Documentation License v1.3", deprecated: true, gnuRoot: "GFDL", gnuVariant: VariantNone, base: "GFDL-1.3", verMajor: 1, verMinor: 3, hasVersion: true},
	{name: "GFDL-1.3-only", fullName: "GNU Free Documentation License v1.3 only", gnuRoot: "GFDL", gnuVariant: VariantOnly, base: "GFDL-1.3", verMajor: 1, verMinor: 3, hasVersion: true},
	{name: "GFDL-1.3-or-later", fullName: "GNU Free Documentation License v1.3 or later", fsfLibre: true, gnuRoot: "GFDL", gnuVariant: VariantOrLater, base: "GFDL-1.3", verMajor: 1, verMinor: 3, hasVersion: true},

	// wxWindows: deprecated upstream alias, no -only/-or-later of its own.
	{name: "wxWindows", fullName: "wxWindows Library License", deprecated: true, base: "wxWindows"},
}

// exceptions is the generated-style exception table.
var exceptions = []exceptionEntry{
	{name: "Classpath-exception-2.0"},
	{name: "LLVM-exception"},
	{name: "GCC-exception-3.1"},
	{name: "Autoconf-exception-3.0"},
	{name: "Bison-exception-2.2"},
	{name: "Font-exception-2.0"},
	{name: "OCaml-LGPL-linking-exception"},
	{name: "Qwt-exception-1.0", deprecated: true},
}

// impreciseNames is the small fixup table consulted under
// ParseMode.AllowImpreciseLicenseNames — common variations that are not
// exact SPDX short names but unambiguously name one. Keyed lowercase.
var impreciseNames = map[string]string{
	"apache 2.0":                    "Apache-2.0",
	"apache 2":                      "Apache-2.0",
	"apache2":                       "Apache-2.0",
	"apache license 2.0":            "Apache-2.0",
	"apache license, version 2.0":   "Apache-2.0",
	"apache software license":       "Apache-2.0",
	"the apache software license":   "Apache-2.0",
	"mit license":                   "MIT",
	"the mit license":               "MIT",
	"bsd license":                   "BSD-3-Clause",
	"new bsd license":               "BSD-3-Clause",
	"revised bsd license":           "BSD-3-Clause",
	"simplified bsd license":        "BSD-2-Clause",
	"gplv2":                         "GPL-2.0-only",
	"gpl v2":                        "GPL-2.0-only",
	"gplv3":                         "GPL-3.0-only",
	"gpl v3":                        "GPL-3.0-only",
	"gpl-3.0+":                      "GPL-3.0-or-later",
	"agplv3":                        "AGPL-3.0-only",
	"agpl v3":                       "AGPL-3.0-only",
	"lgplv2.1":                      "LGPL-2.1-only",
	"lgpl v2.1":                     "LGPL-2.1-only",
	"lgplv3":                        "LGPL-3.0-only",
	"mozilla public license 2.0":    "MPL-2.0",
	"eclipse public license 2.0":    "EPL-2.0",
	"eclipse public license 1.0":    "EPL-1.0",
	"python software foundation":    "PSF-2.0",
	"wxwindows library licence":     "wxWindows",
	"wxwindows library license":     "wxWindows",
	"creative commons attribution": "CC-BY-4.0",
}
