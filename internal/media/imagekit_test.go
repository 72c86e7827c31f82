package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLTransformEncoding(t *testing.T) {
	c := New("pub", "priv", "https://ik.example.com/acct/")

	tests := []struct {
		name string
		path string
		tr   Transform
		want string
	}{
		{
			name: "plain url without transform",
			path: "/documents/notes.pdf",
			tr:   Transform{},
			want: "https://ik.example.com/acct/documents/notes.pdf",
		},
		{
			name: "thumbnail fit",
			path: "documents/notes.pdf",
			tr:   Transform{Height: 300, Width: 300, Crop: "at_max", Format: "jpg", Quality: 80},
			want: "https://ik.example.com/acct/tr:h-300,w-300,c-at_max,f-jpg,q-80/documents/notes.pdf",
		},
		{
			name: "overlay label escapes spaces",
			path: "/documents/archive.zip",
			tr: Transform{
				Height: 300, Width: 300, Crop: "at_max", Format: "jpg", Quality: 80,
				OverlayText: "ZIP Archive", OverlayTextSize: 40,
				OverlayTextColor: "ffffff", OverlayBackground: "00000080",
			},
			want: "https://ik.example.com/acct/tr:h-300,w-300,c-at_max,f-jpg,q-80,ot-ZIP%20Archive,ots-40,otc-ffffff,obg-00000080/documents/archive.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.URL(tt.path, tt.tr))
		})
	}
}

func TestUploadSendsMultipartWithAuth(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(tmp, []byte("pdf-bytes"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "priv", user)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "notes.pdf", r.FormValue("fileName"))
		assert.Equal(t, "/documents", r.FormValue("folder"))
		assert.Equal(t, "true", r.FormValue("useUniqueFileName"))

		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"fileId":"fid1","name":"notes_x.pdf","url":"https://ik.example.com/acct/documents/notes_x.pdf","filePath":"/documents/notes_x.pdf"}`))
	}))
	defer srv.Close()

	c := New("pub", "priv", "https://ik.example.com/acct").WithEndpoints(srv.URL, srv.URL)

	res, err := c.Upload(context.Background(), tmp, "notes.pdf", "/documents")
	require.NoError(t, err)
	assert.Equal(t, "fid1", res.FileID)
	assert.Equal(t, "/documents/notes_x.pdf", res.FilePath)
}

func TestUploadSurfacesServerError(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "x.png")
	require.NoError(t, os.WriteFile(tmp, []byte("png"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"bad key"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := New("pub", "priv", "https://ik.example.com/acct").WithEndpoints(srv.URL, srv.URL)

	_, err := c.Upload(context.Background(), tmp, "x.png", "/documents")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "media upload failed")
}

func TestDelete(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New("pub", "priv", "https://ik.example.com/acct").WithEndpoints(srv.URL, srv.URL)
	require.NoError(t, c.Delete(context.Background(), "fid1"))
	assert.Equal(t, "/v1/files/fid1", gotPath)
}

func TestTempPathKeepsExtension(t *testing.T) {
	p := TempPath("My Notes.PDF")
	assert.Equal(t, ".PDF", filepath.Ext(p))
	assert.NotEqual(t, TempPath("My Notes.PDF"), p)
}
