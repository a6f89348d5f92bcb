package ml

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/landwatch/landcover-validation-poc/internal/search"
)

// ModelClient talks to the external model-training service over HTTP. The
// classifier itself lives behind that service; this client only ships
// labeled feature vectors out and predictions back, which keeps the search
// loop independent of the classification algorithm.
type ModelClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewModelClient(baseURL string) *ModelClient {
	return &ModelClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Minute,
		},
	}
}

type trainRequest struct {
	Features    [][]float64 `json:"features"`
	Labels      []int       `json:"labels"`
	Trees       int         `json:"trees"`
	BagFraction float64     `json:"bag_fraction"`
}

type trainResponse struct {
	ModelID string `json:"model_id"`
}

type predictRequest struct {
	ModelID  string      `json:"model_id"`
	Features [][]float64 `json:"features"`
}

type predictResponse struct {
	Labels []int `json:"labels"`
}

// Train submits the training partition under one hyperparameter point and
// returns a handle on the remotely trained model.
func (c *ModelClient) Train(X [][]float64, y []int, point search.Point) (search.Model, error) {
	req := trainRequest{
		Features:    X,
		Labels:      y,
		Trees:       point.Trees,
		BagFraction: point.BagFraction,
	}

	var resp trainResponse
	if err := c.post("/train", req, &resp); err != nil {
		return nil, fmt.Errorf("error calling train: %w", err)
	}
	if resp.ModelID == "" {
		return nil, fmt.Errorf("model service returned no model id")
	}

	return &remoteModel{client: c, modelID: resp.ModelID}, nil
}

// Model returns a handle on a previously trained model by its service-side
// id, so a past run's winner can be re-scored against new reference cells.
func (c *ModelClient) Model(modelID string) search.Model {
	return &remoteModel{client: c, modelID: modelID}
}

func (c *ModelClient) post(path string, request, response interface{}) error {
	payload, err := json.Marshal(request)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model service returned status code %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(response)
}

type remoteModel struct {
	client  *ModelClient
	modelID string
}

func (m *remoteModel) Predict(features []float64) (int, error) {
	labels, err := m.PredictBatch([][]float64{features})
	if err != nil {
		return 0, err
	}
	return labels[0], nil
}

// PredictBatch classifies many feature vectors in one round trip.
func (m *remoteModel) PredictBatch(features [][]float64) ([]int, error) {
	req := predictRequest{ModelID: m.modelID, Features: features}

	var resp predictResponse
	if err := m.client.post("/predict", req, &resp); err != nil {
		return nil, fmt.Errorf("error calling predict: %w", err)
	}
	if len(resp.Labels) != len(features) {
		return nil, fmt.Errorf("model service returned %d labels for %d vectors", len(resp.Labels), len(features))
	}

	return resp.Labels, nil
}
