// Package client is a small HTTP client for the public Battlesnake API,
// used by the arena to pit this engine against remote snakes.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/copperbelly/battlesnake/sdk"
)

type BattlesnakeClient interface {
	Info() (info sdk.BattlesnakeInfoResponse, err error)
	Start(state sdk.GameState) error
	End(state sdk.GameState) error
	Move(state sdk.GameState) (sdk.BattlesnakeMoveResponse, error)
}

type client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) BattlesnakeClient {
	return &client{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

func (c *client) request(uri string, method string, body []byte) ([]byte, *http.Response, error) {
	r, err := http.NewRequest(method, c.baseURL+uri, bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(r)
	if err != nil {
		return nil, resp, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, err
	}
	return responseBody, resp, nil
}

func (c *client) post(uri string, state sdk.GameState) ([]byte, error) {
	reqBody, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	body, resp, err := c.request(uri, http.MethodPost, reqBody)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("non successful code received status_code=%d response_body=%s", resp.StatusCode, string(body))
	}
	return body, nil
}

func (c *client) Info() (info sdk.BattlesnakeInfoResponse, err error) {
	body, resp, err := c.request("/", http.MethodGet, nil)
	if err != nil {
		return info, err
	}
	if resp.StatusCode >= 300 {
		return info, fmt.Errorf("non successful code received status_code=%d response_body=%s", resp.StatusCode, string(body))
	}
	err = json.Unmarshal(body, &info)
	return info, err
}

func (c *client) Start(state sdk.GameState) error {
	_, err := c.post("/start", state)
	return err
}

func (c *client) End(state sdk.GameState) error {
	_, err := c.post("/end", state)
	return err
}

func (c *client) Move(state sdk.GameState) (move sdk.BattlesnakeMoveResponse, err error) {
	body, err := c.post("/move", state)
	if err != nil {
		return move, err
	}
	err = json.Unmarshal(body, &move)
	return move, err
}
