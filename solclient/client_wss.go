// Copyright 2025 The go-soltx Authors
// This file is part of the go-soltx library.

package solclient

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/gorilla/websocket"

	"github.com/cielu/go-soltx/common"
	"github.com/cielu/go-soltx/core"
	"github.com/cielu/go-soltx/types"
)

// WsClient subscribes to account change notifications over websocket.
// Its one job here is keeping cached lookup tables fresh.
type WsClient struct {
	conn *websocket.Conn
}

// DialWs connects a websocket client to the given URL.
func DialWs(ctx context.Context, rawurl string) (*WsClient, error) {
	if rawurl == "" {
		return nil, core.StdErr("DialWs", core.ErrEmptyRpcUrl)
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, rawurl, nil)
	if err != nil {
		return nil, core.StdErr("DialWs", err)
	}
	return &WsClient{conn: conn}, nil
}

// Close closes the underlying connection.
func (wc *WsClient) Close() error {
	return wc.conn.Close()
}

type wsNotification struct {
	Method string `json:"method"`
	Params struct {
		Result struct {
			Value struct {
				Data []string `json:"data"`
			} `json:"value"`
		} `json:"result"`
	} `json:"params"`
}

// WatchLookupTable subscribes to changes of the lookup table account at key
// and invokes onUpdate with the re-decoded table on every notification.
// Blocks until ctx is done or the connection fails.
func (wc *WsClient) WatchLookupTable(ctx context.Context, key common.Address, onUpdate func(types.AddressLookupTableAccount)) error {
	sub := rpcRequest{
		Jsonrpc: "2.0",
		ID:      1,
		Method:  "accountSubscribe",
		Params:  []any{key.String(), map[string]string{"encoding": "base64"}},
	}
	if err := wc.conn.WriteJSON(sub); err != nil {
		return core.StdErr("WatchLookupTable subscribe", err)
	}
	// unwind the read loop when ctx is canceled
	go func() {
		<-ctx.Done()
		wc.conn.Close()
	}()
	for {
		_, msg, err := wc.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return core.StdErr("WatchLookupTable read", err)
		}
		var note wsNotification
		if err = json.Unmarshal(msg, &note); err != nil || note.Method != "accountNotification" {
			// subscription confirmations and malformed frames are skipped
			continue
		}
		if len(note.Params.Result.Value.Data) == 0 {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(note.Params.Result.Value.Data[0])
		if err != nil {
			continue
		}
		lut, err := decodeLookupTable(key, data)
		if err != nil {
			continue
		}
		onUpdate(lut)
	}
}
