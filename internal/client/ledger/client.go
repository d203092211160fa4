package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/ErniyazCode/kazproperty/pkg/logger"
)

// ErrNotConnected is returned by state-changing calls made without an
// active account.
var ErrNotConnected = errors.New("ledger: no active account")

const sendGasLimit = 500000

// Client wraps the RPC provider and the fixed RealEstate contract. Read
// methods are plain calls; state-changing methods are signed and sent from
// the active account. The client never retries: callers are expected to
// catch failures and fall back.
type Client struct {
	eth      *ethclient.Client
	contract common.Address
	abi      abi.ABI
	chainID  *big.Int

	key     *ecdsa.PrivateKey
	account common.Address
}

func New(rpcURL, contractAddress string) (*Client, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", contractAddress)
	}

	eth, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ledger: %w", err)
	}

	chainID, err := eth.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(realEstateABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	logger.Info("Ledger client initialized: rpc=%s chain=%s contract=%s", rpcURL, chainID.String(), contractAddress)
	return &Client{
		eth:      eth,
		contract: common.HexToAddress(contractAddress),
		abi:      parsedABI,
		chainID:  chainID,
	}, nil
}

// Connect activates the account derived from the private key. Calling it
// again while connected is a no-op.
func (c *Client) Connect(privateKeyHex string) error {
	if c.key != nil {
		return nil
	}

	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")
	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}

	c.key = key
	c.account = crypto.PubkeyToAddress(key.PublicKey)
	logger.Info("Ledger account connected: %s", c.account.Hex())
	return nil
}

// Disconnect clears the active account locally. It does not revoke
// anything on the provider side.
func (c *Client) Disconnect() {
	c.key = nil
	c.account = common.Address{}
}

func (c *Client) Connected() bool {
	return c.key != nil
}

func (c *Client) Account() (string, bool) {
	if c.key == nil {
		return "", false
	}
	return c.account.Hex(), true
}

func (c *Client) call(ctx context.Context, out interface{}, method string, args ...interface{}) error {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack %s: %w", method, err)
	}

	msg := ethereum.CallMsg{
		To:   &c.contract,
		Data: data,
	}
	result, err := c.eth.CallContract(ctx, msg, nil)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}
	if len(result) == 0 {
		return fmt.Errorf("empty result from %s", method)
	}

	if err := c.abi.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, value *big.Int, method string, args ...interface{}) (string, error) {
	if c.key == nil {
		return "", ErrNotConnected
	}

	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return "", fmt.Errorf("failed to pack %s: %w", method, err)
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.account)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %w", err)
	}

	if value == nil {
		value = big.NewInt(0)
	}
	tx := types.NewTransaction(nonce, c.contract, value, sendGasLimit, gasPrice, data)

	signer := types.NewEIP155Signer(c.chainID)
	signedTx, err := types.SignTx(tx, signer, c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.eth.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to send %s: %w", method, err)
	}

	txHash := signedTx.Hash().Hex()
	logger.Info("Ledger transaction sent: method=%s tx=%s", method, txHash)
	return txHash, nil
}

func (c *Client) Admin(ctx context.Context) (string, error) {
	var admin common.Address
	if err := c.call(ctx, &admin, "admin"); err != nil {
		return "", err
	}
	return admin.Hex(), nil
}

func (c *Client) User(ctx context.Context, address string) (*User, error) {
	var user User
	if err := c.call(ctx, &user, "users", common.HexToAddress(address)); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UserProperties(ctx context.Context, address string) ([]int64, error) {
	var ids []*big.Int
	if err := c.call(ctx, &ids, "getUserProperties", common.HexToAddress(address)); err != nil {
		return nil, err
	}
	return toInt64s(ids), nil
}

func (c *Client) Property(ctx context.Context, id int64) (*Property, error) {
	var property Property
	if err := c.call(ctx, &property, "properties", big.NewInt(id)); err != nil {
		return nil, err
	}
	return &property, nil
}

func (c *Client) PropertyCount(ctx context.Context) (int64, error) {
	var count *big.Int
	if err := c.call(ctx, &count, "getPropertyCount"); err != nil {
		return 0, err
	}
	return count.Int64(), nil
}

func (c *Client) PropertyTransactions(ctx context.Context, propertyID int64) ([]int64, error) {
	var ids []*big.Int
	if err := c.call(ctx, &ids, "getPropertyTransactions", big.NewInt(propertyID)); err != nil {
		return nil, err
	}
	return toInt64s(ids), nil
}

func (c *Client) Transaction(ctx context.Context, id int64) (*Transaction, error) {
	var transaction Transaction
	if err := c.call(ctx, &transaction, "transactions", big.NewInt(id)); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) RegisterUser(ctx context.Context, name, kycDocument string) (string, error) {
	return c.send(ctx, nil, "registerUser", name, kycDocument)
}

func (c *Client) VerifyUser(ctx context.Context, address string) (string, error) {
	return c.send(ctx, nil, "verifyUser", common.HexToAddress(address))
}

func (c *Client) SignECP(ctx context.Context) (string, error) {
	return c.send(ctx, nil, "signECP")
}

func (c *Client) ListProperty(ctx context.Context, title, description, location string, priceWei *big.Int, roomCount, squareMeters int64, images []string, documents string) (string, error) {
	return c.send(ctx, nil, "listProperty",
		title,
		description,
		location,
		priceWei,
		big.NewInt(roomCount),
		big.NewInt(squareMeters),
		images,
		documents,
	)
}

func (c *Client) ApproveProperty(ctx context.Context, propertyID int64) (string, error) {
	return c.send(ctx, nil, "approveProperty", big.NewInt(propertyID))
}

// BuyProperty sends the purchase call with the property price attached as
// transaction value.
func (c *Client) BuyProperty(ctx context.Context, propertyID int64, priceWei *big.Int) (string, error) {
	return c.send(ctx, priceWei, "buyProperty", big.NewInt(propertyID))
}

func toInt64s(values []*big.Int) []int64 {
	result := make([]int64, 0, len(values))
	for _, v := range values {
		result = append(result, v.Int64())
	}
	return result
}
