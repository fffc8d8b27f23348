package binarycookies

import (
	"bytes"
	"testing"
)

func FuzzTest(f *testing.F) {
	f.Add(_test1)
	f.Add(_test2)
	f.Add(_test3)
	f.Fuzz(func(t *testing.T, a []byte) {
		out, err := New(bytes.NewReader(a)).Decode()
		t.Logf("out: %#v\n", out)
		t.Logf("err: %s\n", err)
	})
}

func FuzzRoundTrip(f *testing.F) {
	f.Add(".example.com", "SID", "/", "abc", true, false)
	f.Add("", "", "", "", false, true)
	f.Add("bücher.example", "ключ", "/ñ", "🍪", true, true)
	f.Fuzz(func(t *testing.T, domain, name, path, value string, secure, httpOnly bool) {
		if bytes.IndexByte([]byte(domain+name+path+value), 0) >= 0 {
			t.Skip("strings are stored NUL-terminated")
		}

		in := Cookie{Domain: domain, Name: name, Path: path, Value: value, Secure: secure, HttpOnly: httpOnly}
		out, err := Parse(Build([]Page{{Cookies: []Cookie{in}}}, WithClock(constantClock{})))

		if err != nil {
			t.Fatal(err)
		}

		if len(out.Pages) != 1 || len(out.Pages[0].Cookies) != 1 {
			t.Fatalf("unexpected archive %#v", out)
		}

		got := out.Pages[0].Cookies[0]

		if path == "" {
			path = "/"
		}

		// strings that are not valid UTF-8 decode as empty
		if got.Domain != domain && got.Domain != "" {
			t.Fatalf("domain: %q != %q", got.Domain, domain)
		}

		if got.Name != name && got.Name != "" {
			t.Fatalf("name: %q != %q", got.Name, name)
		}

		if got.Path != path && got.Path != "" {
			t.Fatalf("path: %q != %q", got.Path, path)
		}

		if got.Value != value && got.Value != "" {
			t.Fatalf("value: %q != %q", got.Value, value)
		}

		if got.Secure != secure || got.HttpOnly != httpOnly {
			t.Fatalf("flags: %#x", got.Flags)
		}
	})
}
