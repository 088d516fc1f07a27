// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package solclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/core"
	"github.com/cielu/go-soltx/types"
)

// LookupTableMetaSize the serialized size of a lookup table account's meta
// block; the address list follows as flat 32-byte chunks.
const LookupTableMetaSize = 56

// Client is a minimal JSON-RPC client covering the account reads the
// decoder needs: fetching lookup table accounts on demand.
type Client struct {
	rawurl string
	c      *http.Client
}

// Dial returns a client for the given URL. No request is made until the
// first call.
func Dial(rawurl string) (*Client, error) {
	if rawurl == "" {
		return nil, core.StdErr("Dial", core.ErrEmptyRpcUrl)
	}
	return &Client{
		rawurl: rawurl,
		c:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// CallContext invokes method and unmarshals the json-rpc result into res.
func (sc *Client) CallContext(ctx context.Context, res any, method string, params ...any) error {
	body, err := json.Marshal(rpcRequest{Jsonrpc: "2.0", ID: 1, Method: method, Params: params})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sc.rawurl, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := sc.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  *rpcError       `json:"error"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	if envelope.Error != nil {
		return envelope.Error
	}
	return json.Unmarshal(envelope.Result, res)
}

type accountInfoResult struct {
	Value *struct {
		Data  []string `json:"data"`
		Owner string   `json:"owner"`
	} `json:"value"`
}

// GetAccountInfo returns the raw data of the account of provided key.
func (sc *Client) GetAccountInfo(ctx context.Context, account common.Address) ([]byte, error) {
	var res accountInfoResult
	err := sc.CallContext(ctx, &res, "getAccountInfo", account.String(), map[string]string{"encoding": "base64"})
	if err != nil {
		return nil, core.StdErr("GetAccountInfo", err)
	}
	if res.Value == nil || len(res.Value.Data) == 0 {
		return nil, core.StdErr("GetAccountInfo", core.ErrAccountNotFound)
	}
	return base64.StdEncoding.DecodeString(res.Value.Data[0])
}

// FetchAddressLookupTable fetches and decodes the lookup table account at
// key: the meta block is skipped, the remainder splits into 32-byte
// addresses in table order.
func (sc *Client) FetchAddressLookupTable(ctx context.Context, key common.Address) (types.AddressLookupTableAccount, error) {
	data, err := sc.GetAccountInfo(ctx, key)
	if err != nil {
		return types.AddressLookupTableAccount{}, err
	}
	return decodeLookupTable(key, data)
}

// LutFetchFn adapts the client to the registry's fetcher contract.
func (sc *Client) LutFetchFn() func(key common.Address) (types.AddressLookupTableAccount, error) {
	return func(key common.Address) (types.AddressLookupTableAccount, error) {
		return sc.FetchAddressLookupTable(context.Background(), key)
	}
}

func decodeLookupTable(key common.Address, data []byte) (types.AddressLookupTableAccount, error) {
	if len(data) < LookupTableMetaSize {
		return types.AddressLookupTableAccount{}, core.StdErr("decodeLookupTable", core.ErrNotEnoughBytes)
	}
	body := data[LookupTableMetaSize:]
	lut := types.AddressLookupTableAccount{Key: key}
	for len(body) >= common.AddressLength {
		lut.Addresses = append(lut.Addresses, common.BytesToAddress(body[:common.AddressLength]))
		body = body[common.AddressLength:]
	}
	return lut, nil
}
