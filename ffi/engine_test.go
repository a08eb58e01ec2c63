package ffi

import (
	"strings"
	"testing"
)

func TestCodeSuccessPredicate(t *testing.T) {
	if !CodeOK.IsSuccess() {
		t.Error("CodeOK must be success")
	}
	for _, c := range []Code{CodeCouldntResolve, CodeAbortedByCallback, Code(99)} {
		if c.IsSuccess() {
			t.Errorf("code %d must not be success", int32(c))
		}
	}
}

func TestCodeErrorStrings(t *testing.T) {
	if got := CodeAbortedByCallback.Error(); !strings.Contains(got, "42") || !strings.Contains(got, "aborted by callback") {
		t.Errorf("Error() = %q", got)
	}
	// Unknown codes still render their numeric value.
	if got := Code(1234).Error(); !strings.Contains(got, "1234") {
		t.Errorf("Error() = %q", got)
	}
}

// The numeric key encoding must match the native header: option keys embed
// their value kind in the ten-thousands base, long info keys live at 0x200000.
func TestKeyEncoding(t *testing.T) {
	keys := map[string]struct{ got, want int32 }{
		"URL":            {int32(OptURL), 10002},
		"WriteData":      {int32(OptWriteData), 10001},
		"ReadData":       {int32(OptReadData), 10009},
		"HeaderData":     {int32(OptHeaderData), 10029},
		"WriteFunction":  {int32(OptWriteFunction), 20011},
		"ReadFunction":   {int32(OptReadFunction), 20012},
		"HeaderFunction": {int32(OptHeaderFunction), 20079},
		"UserAgent":      {int32(OptUserAgent), 10018},
		"Timeout":        {int32(OptTimeout), 13},
		"InFileSize":     {int32(OptInFileSize), 14},
		"Verbose":        {int32(OptVerbose), 41},
		"NoProgress":     {int32(OptNoProgress), 43},
		"Upload":         {int32(OptUpload), 46},
		"Post":           {int32(OptPost), 47},
		"FollowLocation": {int32(OptFollowLocation), 52},
		"ResponseCode":   {int32(InfoResponseCode), 0x200002},
	}
	for name, k := range keys {
		if k.got != k.want {
			t.Errorf("%s = %d, want %d", name, k.got, k.want)
		}
	}
}

func TestAbortSentinelIsNotAValidByteCount(t *testing.T) {
	if ReadFuncAbort != 0x10000000 {
		t.Errorf("ReadFuncAbort = %#x, want 0x10000000", ReadFuncAbort)
	}
}
