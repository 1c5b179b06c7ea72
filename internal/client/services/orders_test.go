package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Create_JSONBody(t *testing.T) {
	var got OrderInput
	apiClient, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"data":{"id":31,"client_id":5,"garment_type":"hoodie","quantity":120,"status":"pending"}}`))
	}))
	svc := NewOrderService(apiClient)

	in := OrderInput{ClientID: 5, GarmentType: "hoodie", Quantity: 120, Status: "pending"}
	created, err := svc.Create(context.Background(), in, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(5), got.ClientID)
	assert.Equal(t, 120, got.Quantity)
	assert.Equal(t, int64(31), created.ID)
}

func TestOrderService_Update_MultipartWithDesignFile(t *testing.T) {
	apiClient, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "PUT", r.FormValue("_method"))
		assert.Equal(t, "5", r.FormValue("client_id"))
		assert.Equal(t, "120", r.FormValue("quantity"))

		_, fh, err := r.FormFile("design_file")
		require.NoError(t, err)
		assert.Equal(t, "front-print.svg", fh.Filename)

		w.Write([]byte(`{"data":{"id":31,"client_id":5,"garment_type":"hoodie","quantity":120,"status":"pending"}}`))
	}))
	svc := NewOrderService(apiClient)

	in := OrderInput{
		ClientID: 5, GarmentType: "hoodie", Quantity: 120, Status: "pending",
		DesignFile: &Upload{FileName: "front-print.svg", ContentType: "image/svg+xml", Reader: strings.NewReader("<svg/>")},
	}
	_, err := svc.Update(context.Background(), 31, in, nil)
	require.NoError(t, err)
}

func TestOrderService_List_FilterValuesForwarded(t *testing.T) {
	apiClient, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "in_production", q.Get("status"))
		assert.Equal(t, "5", q.Get("client_id"))
		w.Write([]byte(`{"data":[],"current_page":1,"last_page":0,"per_page":10,"total":0,"from":0,"to":0}`))
	}))
	svc := NewOrderService(apiClient)

	_, err := svc.List(context.Background(), 1, 10, map[string]string{"status": "in_production", "client_id": "5"})
	require.NoError(t, err)
}

func TestOrderService_List_EmptyFilterValuesOmitted(t *testing.T) {
	apiClient, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["status"]
		assert.False(t, present, "empty filter values must not become query parameters")
		w.Write([]byte(`{"data":[],"current_page":1,"last_page":0,"per_page":10,"total":0,"from":0,"to":0}`))
	}))
	svc := NewOrderService(apiClient)

	_, err := svc.List(context.Background(), 1, 10, map[string]string{"status": ""})
	require.NoError(t, err)
}
