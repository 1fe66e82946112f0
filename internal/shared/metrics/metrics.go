package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	ocrRequestsTotal      atomic.Uint64
	ocrFailedTotal        atomic.Uint64
	ocrEmptyTotal         atomic.Uint64
	documentsCreatedTotal atomic.Uint64
	documentsDeletedTotal atomic.Uint64

	ocrDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncOCRRequested increments the OCR request counter.
func IncOCRRequested() {
	ocrRequestsTotal.Add(1)
}

// IncOCRFailed increments the OCR failure counter.
func IncOCRFailed() {
	ocrFailedTotal.Add(1)
}

// IncOCREmpty counts successful extractions that found no text.
func IncOCREmpty() {
	ocrEmptyTotal.Add(1)
}

// IncDocumentCreated increments the document creation counter.
func IncDocumentCreated() {
	documentsCreatedTotal.Add(1)
}

// IncDocumentDeleted increments the document deletion counter.
func IncDocumentDeleted() {
	documentsDeletedTotal.Add(1)
}

// ObserveOCRDurationMs records a provider call duration in milliseconds.
func ObserveOCRDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	ocrDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "ocr_requests_total", "Total OCR extractions requested", ocrRequestsTotal.Load())
	writeCounter(&buf, "ocr_failed_total", "Total OCR extractions failed", ocrFailedTotal.Load())
	writeCounter(&buf, "ocr_empty_total", "Total OCR extractions with no text found", ocrEmptyTotal.Load())
	writeCounter(&buf, "documents_created_total", "Total documents created", documentsCreatedTotal.Load())
	writeCounter(&buf, "documents_deleted_total", "Total documents deleted", documentsDeletedTotal.Load())
	writeHistogram(&buf, "ocr_duration_ms", "OCR provider call duration in milliseconds", ocrDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	cumulative := uint64(0)
	for i, bound := range snap.buckets {
		cumulative = snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, strconv.FormatFloat(bound, 'f', -1, 64), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}
