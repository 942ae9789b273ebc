package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractJSONExpiry(t *testing.T) {
	expiry := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	days := 27325

	b, err := json.Marshal(Contract{ID: "c-1", ContractName: "Vendor Contract", ContractExpiryDate: &expiry, DaysUntilExpiry: &days})
	require.NoError(t, err)

	assert.Contains(t, string(b), `"contract_expiry_date":"2099-01-01T00:00:00.000Z"`)
	assert.Contains(t, string(b), `"contract_name":"Vendor Contract"`)

	var back Contract
	require.NoError(t, json.Unmarshal(b, &back))
	require.NotNil(t, back.ContractExpiryDate)
	assert.True(t, expiry.Equal(*back.ContractExpiryDate))
}

func TestFileJSONExpiry(t *testing.T) {
	expiry := time.Date(2025, 4, 9, 8, 30, 0, 0, time.FixedZone("WIB", 7*3600))

	b, err := json.Marshal(&File{ID: "f-1", ContractExpiryDate: &expiry})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"contract_expiry_date":"2025-04-09T01:30:00.000Z"`)

	b, err = json.Marshal(File{ID: "f-2"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "contract_expiry_date")
}
