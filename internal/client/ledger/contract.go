package ledger

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ABI of the pre-deployed RealEstate contract. The contract is an external
// collaborator; only the methods below are consumed.
const realEstateABI = `[
	{
		"constant": true,
		"inputs": [],
		"name": "admin",
		"outputs": [{"name": "", "type": "address"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "", "type": "address"}],
		"name": "users",
		"outputs": [
			{"name": "name", "type": "string"},
			{"name": "isVerified", "type": "bool"},
			{"name": "kycDocument", "type": "string"},
			{"name": "hasSignedECP", "type": "bool"}
		],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "user", "type": "address"}],
		"name": "getUserProperties",
		"outputs": [{"name": "", "type": "uint256[]"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "", "type": "uint256"}],
		"name": "properties",
		"outputs": [
			{"name": "id", "type": "uint256"},
			{"name": "title", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "location", "type": "string"},
			{"name": "price", "type": "uint256"},
			{"name": "roomCount", "type": "uint256"},
			{"name": "squareMeters", "type": "uint256"},
			{"name": "images", "type": "string[]"},
			{"name": "documents", "type": "string"},
			{"name": "owner", "type": "address"},
			{"name": "isApproved", "type": "bool"},
			{"name": "isSold", "type": "bool"}
		],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [],
		"name": "getPropertyCount",
		"outputs": [{"name": "", "type": "uint256"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "propertyId", "type": "uint256"}],
		"name": "getPropertyTransactions",
		"outputs": [{"name": "", "type": "uint256[]"}],
		"type": "function"
	},
	{
		"constant": true,
		"inputs": [{"name": "", "type": "uint256"}],
		"name": "transactions",
		"outputs": [
			{"name": "id", "type": "uint256"},
			{"name": "propertyId", "type": "uint256"},
			{"name": "seller", "type": "address"},
			{"name": "buyer", "type": "address"},
			{"name": "price", "type": "uint256"},
			{"name": "timestamp", "type": "uint256"}
		],
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [
			{"name": "name", "type": "string"},
			{"name": "kycDocument", "type": "string"}
		],
		"name": "registerUser",
		"outputs": [],
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [{"name": "user", "type": "address"}],
		"name": "verifyUser",
		"outputs": [],
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [],
		"name": "signECP",
		"outputs": [],
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [
			{"name": "title", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "location", "type": "string"},
			{"name": "price", "type": "uint256"},
			{"name": "roomCount", "type": "uint256"},
			{"name": "squareMeters", "type": "uint256"},
			{"name": "images", "type": "string[]"},
			{"name": "documents", "type": "string"}
		],
		"name": "listProperty",
		"outputs": [],
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [{"name": "propertyId", "type": "uint256"}],
		"name": "approveProperty",
		"outputs": [],
		"type": "function"
	},
	{
		"constant": false,
		"inputs": [{"name": "propertyId", "type": "uint256"}],
		"name": "buyProperty",
		"outputs": [],
		"payable": true,
		"type": "function"
	}
]`

// User mirrors the contract's user record. Values are in ledger units and
// field order follows the ABI outputs.
type User struct {
	Name         string
	IsVerified   bool
	KycDocument  string
	HasSignedECP bool
}

// Property mirrors the contract's property record. Price is in wei.
type Property struct {
	Id           *big.Int
	Title        string
	Description  string
	Location     string
	Price        *big.Int
	RoomCount    *big.Int
	SquareMeters *big.Int
	Images       []string
	Documents    string
	Owner        common.Address
	IsApproved   bool
	IsSold       bool
}

// Transaction mirrors the contract's transaction record. Price is in wei,
// Timestamp is a unix timestamp.
type Transaction struct {
	Id         *big.Int
	PropertyId *big.Int
	Seller     common.Address
	Buyer      common.Address
	Price      *big.Int
	Timestamp  *big.Int
}
