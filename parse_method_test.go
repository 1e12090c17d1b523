// Copyright 2022 Intuitive Labs GmbH. All rights reserved.
//
// Use of this source code is governed by a source-available license
// that can be found in the LICENSE.txt file in the root of the source
// tree.

package htparse

import (
	"testing"
)

func TestMthNameLookup(t *testing.T) {
	// statistics
	var max, crowded, total int
	for _, l := range mthNameLookup {
		if len(l) > max {
			max = len(l)
		}
		if len(l) > 1 {
			crowded++
		}
		total += len(l)
	}
	if total != int(MethodUnknown) {
		t.Errorf("init: mthNameLookup[%d][..]:"+
			" lookup hash has too few elements %d/%d  (max %d, crowded %d)\n",
			len(mthNameLookup), total, MethodUnknown, max, crowded)
	}
	if max > 2 {
		t.Errorf("init: mthNameLookup[%d][..]: max %d, crowded %d, total %d\n",
			len(mthNameLookup), max, crowded, total)
	}
	if max > 0 {
		t.Logf("init: mthNameLookup[%d][..]: max %d, crowded %d, total %d\n",
			len(mthNameLookup), max, crowded, total)
	}
}

func TestGetMethodNo(t *testing.T) {
	// every known method maps to itself
	for m := MethodGET; m < MethodUnknown; m++ {
		if g := GetMethodNo(Method2Name[m]); g != m {
			t.Errorf("GetMethodNo(%q) = %d (%q), expected %d (%q)",
				Method2Name[m], g, g, m, m)
		}
	}

	unknown := [...]string{
		"", "G", "GETX", "get", "BREW", "PROPATCH", "PATCHY", "XPATCH",
	}
	for _, s := range unknown {
		if g := GetMethodNo([]byte(s)); g != MethodUnknown {
			t.Errorf("GetMethodNo(%q) = %d (%q), expected unknown", s, g, g)
		}
	}
}

func TestMethodName(t *testing.T) {
	if MethodGET.String() != "GET" {
		t.Errorf("MethodGET name %q", MethodGET.String())
	}
	if MethodPROPPATCH.String() != "PROPPATCH" {
		t.Errorf("MethodPROPPATCH name %q", MethodPROPPATCH.String())
	}
	if MethodUnknown.Name() != nil {
		t.Errorf("MethodUnknown name %q, expected nil",
			MethodUnknown.Name())
	}
	if bad := Method(250); bad.Name() != nil {
		t.Errorf("out of range method name %q, expected nil", bad.Name())
	}
}
