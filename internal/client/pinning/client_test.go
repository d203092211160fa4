package pinning

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "Bearer test-jwt", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "passport.pdf", header.Filename)

		_ = json.NewEncoder(w).Encode(map[string]string{"IpfsHash": "QmTestHash"})
	}))
	defer server.Close()

	client := NewWithURLs("test-jwt", server.URL, "https://gateway.example/ipfs")
	result, err := client.UploadFile(context.Background(), "passport.pdf", strings.NewReader("file-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "QmTestHash", result.IpfsHash)
	assert.Equal(t, "https://gateway.example/ipfs/QmTestHash", result.URL)
}

func TestUploadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinJSONToIPFS", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "value", body["key"])

		_ = json.NewEncoder(w).Encode(map[string]string{"IpfsHash": "QmJSONHash"})
	}))
	defer server.Close()

	client := NewWithURLs("test-jwt", server.URL, "https://gateway.example/ipfs")
	result, err := client.UploadJSON(context.Background(), map[string]string{"key": "value"})

	require.NoError(t, err)
	assert.Equal(t, "QmJSONHash", result.IpfsHash)
}

func TestUploadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer server.Close()

	client := NewWithURLs("bad-jwt", server.URL, "https://gateway.example/ipfs")
	_, err := client.UploadFile(context.Background(), "a.jpg", strings.NewReader("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

// One failed upload must not affect the others, and results keep input order.
func TestUploadFilesIndependent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)

		if header.Filename == "broken.jpg" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"IpfsHash": "Qm-" + header.Filename})
	}))
	defer server.Close()

	client := NewWithURLs("test-jwt", server.URL, "https://gateway.example/ipfs")
	results := client.UploadFiles(context.Background(), []File{
		{Name: "one.jpg", Content: strings.NewReader("1")},
		{Name: "broken.jpg", Content: strings.NewReader("2")},
		{Name: "three.jpg", Content: strings.NewReader("3")},
	})

	require.Len(t, results, 3)
	assert.Equal(t, "one.jpg", results[0].Name)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "Qm-one.jpg", results[0].Result.IpfsHash)

	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Result)

	require.NoError(t, results[2].Err)
	assert.Equal(t, "Qm-three.jpg", results[2].Result.IpfsHash)
}
