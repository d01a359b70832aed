package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/agrovision/gw-crop-manager/internal/logger"
	"github.com/agrovision/gw-crop-manager/internal/models"
)

// Model input frame: 150x150 RGB, channels rescaled to [0,1].
const (
	inputSize     = 150
	rescaleFactor = 255.0
)

// ErrBadImage is returned when the upload cannot be decoded as jpeg or png.
var ErrBadImage = errors.New("image could not be decoded")

// predictRequest is the TF-Serving style request body: one instance of
// shape [150][150][3].
type predictRequest struct {
	Instances [][][][]float64 `json:"instances"`
}

// predictResponse carries one probability vector per instance.
type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
}

// ClassifierHTTPFacade wraps the disease-detection model server. The
// facade owns preprocessing: the server receives ready-made 150x150
// normalized tensors.
type ClassifierHTTPFacade struct {
	url    string
	client *http.Client
}

// NewClassifierHTTPFacade creates a facade for the model server predict endpoint.
func NewClassifierHTTPFacade(url string, timeout time.Duration) *ClassifierHTTPFacade {
	return &ClassifierHTTPFacade{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Classify runs the model on raw image bytes and returns the best label
// plus the full probability vector. An argmax index outside the known
// label set maps to NOT CROP. All failures are recoverable errors.
func (f *ClassifierHTTPFacade) Classify(ctx context.Context, imageBytes []byte) (string, []float64, error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		logger.Log.Errorw("failed to decode image", "error", err)
		return "", nil, ErrBadImage
	}

	tensor := preprocess(img)

	body, err := json.Marshal(predictRequest{Instances: [][][][]float64{tensor}})
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("model server request failed", "url", f.url, "error", err)
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("model server returned non-OK status", "url", f.url, "status", resp.StatusCode)
		return "", nil, fmt.Errorf("model server returned status %d", resp.StatusCode)
	}

	var predResp predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predResp); err != nil {
		logger.Log.Errorw("failed to decode model response", "error", err)
		return "", nil, err
	}
	if len(predResp.Predictions) == 0 || len(predResp.Predictions[0]) == 0 {
		return "", nil, errors.New("model server returned no predictions")
	}

	confidences := predResp.Predictions[0]
	idx := argmax(confidences)

	label := models.LabelNotCrop
	if idx < len(models.DiseaseLabels) {
		label = models.DiseaseLabels[idx]
	}

	logger.Log.Infow("classified image",
		"label", label,
		"class_index", idx,
		"confidences", confidences,
	)

	return label, confidences, nil
}

// CureFor returns the cure text for a disease label.
func (f *ClassifierHTTPFacade) CureFor(label string) string {
	return models.CureFor(label)
}

// preprocess resizes the image to the model input frame with
// nearest-neighbor sampling and rescales channels to [0,1].
func preprocess(img image.Image) [][][]float64 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	tensor := make([][][]float64, inputSize)
	for y := 0; y < inputSize; y++ {
		row := make([][]float64, inputSize)
		srcY := bounds.Min.Y + y*h/inputSize
		for x := 0; x < inputSize; x++ {
			srcX := bounds.Min.X + x*w/inputSize
			r, g, b, _ := img.At(srcX, srcY).RGBA()
			// RGBA returns 16-bit channels
			row[x] = []float64{
				float64(r>>8) / rescaleFactor,
				float64(g>>8) / rescaleFactor,
				float64(b>>8) / rescaleFactor,
			}
		}
		tensor[y] = row
	}
	return tensor
}

func argmax(v []float64) int {
	best := 0
	for i, p := range v {
		if p > v[best] {
			best = i
		}
	}
	return best
}
