package ethereum

import (
	"encoding/json"
	"errors"
	"testing"

	jsonrpctest "github.com/gabapcia/nodewatch/internal/pkg/transport/jsonrpc/mocks"
	"github.com/gabapcia/nodewatch/internal/peertrack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminPeersJSON = `[
	{
		"enode": "enode://a979fb575495b8d6db44f750317d0f4622bf4c2aa3365d6af7c284339968eef29b69ad0dce72a4d8db5ebb4968de0e3bec910127f134779fbcb0cb6d3331163c@52.16.188.185:30303",
		"id": "a979fb575495b8d6db44f750317d0f4622bf4c2aa3365d6af7c284339968eef2",
		"name": "Geth/v1.16.8-stable/linux-amd64/go1.24.4",
		"caps": ["eth/68", "snap/1"],
		"network": {
			"localAddress": "192.168.0.104:53488",
			"remoteAddress": "52.16.188.185:30303",
			"inbound": false,
			"trusted": false,
			"static": true
		},
		"protocols": {}
	},
	{
		"id": "",
		"name": "Nethermind/v1.31.0",
		"network": {}
	}
]`

func TestClient_Peers(t *testing.T) {
	t.Run("decodes admin_peers entries", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "admin_peers").Return(json.RawMessage(adminPeersJSON), nil).Once()

		peers, err := NewClient(conn).Peers(t.Context())
		require.NoError(t, err)

		require.Len(t, peers, 2)
		assert.Equal(t, peertrack.Peer{
			ID:            "a979fb575495b8d6db44f750317d0f4622bf4c2aa3365d6af7c284339968eef2",
			Name:          "Geth/v1.16.8-stable/linux-amd64/go1.24.4",
			Enode:         "enode://a979fb575495b8d6db44f750317d0f4622bf4c2aa3365d6af7c284339968eef29b69ad0dce72a4d8db5ebb4968de0e3bec910127f134779fbcb0cb6d3331163c@52.16.188.185:30303",
			RemoteAddress: "52.16.188.185:30303",
		}, peers[0])
		assert.Empty(t, peers[1].ID)
	})

	t.Run("null result is an empty list", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "admin_peers").Return(json.RawMessage(`null`), nil).Once()

		peers, err := NewClient(conn).Peers(t.Context())

		require.NoError(t, err)
		assert.Empty(t, peers)
	})

	t.Run("propagates rpc errors", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "admin_peers").
			Return(nil, errors.New("provider error: [-32601] - the method admin_peers does not exist/is not available")).Once()

		_, err := NewClient(conn).Peers(t.Context())

		assert.ErrorContains(t, err, "admin_peers does not exist")
	})

	t.Run("rejects a non-list result", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.On("Fetch", mock.Anything, "admin_peers").Return(json.RawMessage(`{"id":"x"}`), nil).Once()

		_, err := NewClient(conn).Peers(t.Context())

		assert.ErrorContains(t, err, "decode admin_peers result")
	})
}
