// Package model defines domain models shared by the header index and the address index.
package model

// Coin identifies the chain family served by the indexer.
type Coin string

// Network identifies the network of a coin.
type Network string

var (
	BTC Coin = "BTC"
	LTC Coin = "LTC"
	RVN Coin = "RVN"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)
