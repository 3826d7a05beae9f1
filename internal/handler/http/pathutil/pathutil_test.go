package pathutil

import "testing"

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    int64
		wantErr bool
	}{
		{name: "valid id", path: "/articoli/123", prefix: "/articoli/", want: 123},
		{name: "non-numeric", path: "/articoli/abc", prefix: "/articoli/", wantErr: true},
		{name: "zero", path: "/articoli/0", prefix: "/articoli/", wantErr: true},
		{name: "negative", path: "/articoli/-5", prefix: "/articoli/", wantErr: true},
		{name: "empty", path: "/articoli/", prefix: "/articoli/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID(tt.path, tt.prefix)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractID(%q) err=nil, want error", tt.path)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ExtractID(%q)=%d err=%v, want %d", tt.path, got, err, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/articoli/123", "/articoli/:id"},
		{"/articoli/456/", "/articoli/:id"},
		{"/articoli/123?full=1", "/articoli/:id"},
		{"/immagini/a1b2c3.jpg", "/immagini/:file"},
		{"/articoli", "/articoli"},
		{"/stats", "/stats"},
		{"/health", "/health"},
		{"/auth", "/auth"},
		{"/", "/"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q)=%q, want %q", tt.path, got, tt.want)
		}
	}
}
