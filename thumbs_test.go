package blogpilot

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestBlockedThumbHost(t *testing.T) {
	blocked := []string{
		"",
		"127.0.0.1",
		"10.0.0.5",
		"172.16.3.4",
		"192.168.1.1",
		"169.254.169.254",
		"0.0.0.0",
		"::1",
		"fe80::1",
	}
	for _, host := range blocked {
		if !blockedThumbHost(host) {
			t.Errorf("host %q should be blocked", host)
		}
	}
	if blockedThumbHost("93.184.216.34") {
		t.Error("public address should not be blocked")
	}
}

func TestHandleThumbRejectsInternalTargets(t *testing.T) {
	a := New(Config{})
	for _, src := range []string{
		"http://127.0.0.1:8080/admin",
		"http://192.168.1.1/router",
		"http://169.254.169.254/latest/meta-data/",
		"ftp://example.com/a.png",
		"not a url at all ://",
	} {
		req := httptest.NewRequest(http.MethodGet, "/thumbs?src="+url.QueryEscape(src), nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		if err := a.handleThumb(c); err != nil {
			t.Fatalf("handleThumb(%q): %v", src, err)
		}
		if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "image/svg+xml") {
			t.Errorf("src %q: content type = %q, want the placeholder", src, ct)
		}
		if !bytes.Equal(rec.Body.Bytes(), placeholderSVG) {
			t.Errorf("src %q: body is not the placeholder", src)
		}
	}
}

func TestShrinkImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 960, 540))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	data, err := shrinkImage(&buf)
	if err != nil {
		t.Fatalf("shrinkImage: %v", err)
	}
	out, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 480 || b.Dy() != 270 {
		t.Errorf("resized to %dx%d, want 480x270 preserving aspect", b.Dx(), b.Dy())
	}
}

func TestShrinkImageKeepsSmallSizes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 320, 200))
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	data, err := shrinkImage(&buf)
	if err != nil {
		t.Fatalf("shrinkImage: %v", err)
	}
	out, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("small image resized to %dx%d, want untouched dimensions", b.Dx(), b.Dy())
	}
}
