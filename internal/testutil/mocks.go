// internal/testutil/mocks.go
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// CannedResponse es la respuesta fija que sirve BucketServer para un bucket.
type CannedResponse struct {
	Status int
	Body   string
	Delay  time.Duration
}

// BucketServer simula el endpoint público de un proveedor de object storage.
// El bucket se deduce del primer label del Host, como en virtual-hosted style.
type BucketServer struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]CannedResponse
	hits      map[string]int
}

// NewBucketServer arranca un servidor con respuestas por bucket.
// Buckets desconocidos reciben NoSuchBucket.
func NewBucketServer(responses map[string]CannedResponse) *BucketServer {
	bs := &BucketServer{
		responses: responses,
		hits:      make(map[string]int),
	}
	bs.Server = httptest.NewServer(http.HandlerFunc(bs.handle))
	return bs
}

func (bs *BucketServer) handle(w http.ResponseWriter, r *http.Request) {
	bucket := r.Host
	if i := strings.IndexByte(bucket, '.'); i >= 0 {
		bucket = bucket[:i]
	}

	bs.mu.Lock()
	bs.hits[bucket]++
	resp, ok := bs.responses[bucket]
	bs.mu.Unlock()

	if !ok {
		resp = CannedResponse{Status: http.StatusNotFound, Body: FixtureNoSuchBucketBody}
	}
	if resp.Delay > 0 {
		select {
		case <-time.After(resp.Delay):
		case <-r.Context().Done():
			return
		}
	}
	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}

// Hits retorna cuántas peticiones recibió un bucket.
func (bs *BucketServer) Hits(bucket string) int {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	return bs.hits[bucket]
}

// Addr retorna host:port del servidor, útil como proxy.
func (bs *BucketServer) Addr() string {
	return strings.TrimPrefix(bs.URL, "http://")
}
