package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_HeaderRoundTrip(t *testing.T) {
	csvText := "Patient ID,Age,Recommended Management\nP-001,45,Referral\n"

	rows, err := Parse(strings.NewReader(csvText))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "P-001", rows[0].Get("Patient ID"))
	assert.Equal(t, "45", rows[0].Get("Age"))
	assert.Equal(t, "Referral", rows[0].Get("Recommended Management"))
	// Keys are exactly the header tokens.
	assert.Len(t, rows[0], 3)
}

func TestParse_ShortAndLongRecords(t *testing.T) {
	csvText := "A,B,C\n1,2\n1,2,3,4\n"

	rows, err := Parse(strings.NewReader(csvText))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[0].Get("C"))  // short record: missing column coalesces
	assert.Equal(t, "3", rows[1].Get("C")) // long record: extras dropped
}

func TestParse_Empty(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	csvText := "Item , Available Stock\n gel , 10 \n"

	rows, err := Parse(strings.NewReader(csvText))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "gel", rows[0].Get("Item"))
	assert.Equal(t, "10", rows[0].Get("Available Stock"))
}

func TestClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Item,Available Stock,Threshold\nUltrasound gel,10,10\n"))
	}))
	defer server.Close()

	rows, err := NewClient().Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ultrasound gel", rows[0].Get("Item"))
}

func TestClientFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewClient().Fetch(context.Background(), server.URL)

	assert.Error(t, err)
}

func TestClientFetch_NoURL(t *testing.T) {
	_, err := NewClient().Fetch(context.Background(), "")

	assert.Error(t, err)
}
