package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/NilFoundation/suigql/suigql/internal/types"
	gqltypes "github.com/NilFoundation/suigql/suigql/services/graphql/types"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const (
	versionFlag  = "version"
	firstFlag    = "first"
	afterFlag    = "after"
	allFlag      = "all"
	coinTypeFlag = "coin-type"
	decimalsFlag = "decimals"
	schemeFlag   = "scheme"

	suiDecimals = 9
)

var errNotFound = errors.New("not found")

func printJson(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// optionalUint64 returns the flag value only if it was given explicitly.
func optionalUint64(cmd *cobra.Command, name string) (*uint64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := cmd.Flags().GetUint64(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (rc *RootCommand) objectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "object <address>",
		Short: "Fetch an object, optionally at a past version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := gqltypes.ParseSuiAddress(args[0])
			if err != nil {
				return err
			}
			version, err := optionalUint64(cmd, versionFlag)
			if err != nil {
				return err
			}

			obj, err := rc.Provider().FetchObject(cmd.Context(), address, version)
			if err != nil {
				return err
			}
			if obj == nil {
				return fmt.Errorf("object %s: %w", address, errNotFound)
			}
			return printJson(cmd.OutOrStdout(), obj)
		},
	}
	cmd.Flags().Uint64(versionFlag, 0, "object version, latest if omitted")
	return cmd
}

func (rc *RootCommand) ownedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owned <address>",
		Short: "List objects owned by an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := gqltypes.ParseSuiAddress(args[0])
			if err != nil {
				return err
			}
			first, err := optionalUint64(cmd, firstFlag)
			if err != nil {
				return err
			}
			all, err := cmd.Flags().GetBool(allFlag)
			if err != nil {
				return err
			}

			var connArgs gqltypes.ConnectionArgs
			connArgs.First = first
			if after, _ := cmd.Flags().GetString(afterFlag); after != "" {
				connArgs.After = &after
			}

			page, err := rc.Provider().FetchOwnedObjects(cmd.Context(), owner, connArgs, nil)
			if err != nil {
				return err
			}
			for all && page.PageInfo.HasNextPage && page.PageInfo.EndCursor != nil {
				connArgs.After = page.PageInfo.EndCursor
				next, err := rc.Provider().FetchOwnedObjects(cmd.Context(), owner, connArgs, nil)
				if err != nil {
					return err
				}
				for _, edge := range next.Edges {
					page.Append(edge.Cursor, edge.Node)
				}
				page.PageInfo.HasNextPage = next.PageInfo.HasNextPage
			}
			return printJson(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().Uint64(firstFlag, 0, "page size, node default if omitted")
	cmd.Flags().String(afterFlag, "", "cursor returned by the previous page")
	cmd.Flags().Bool(allFlag, false, "follow cursors until the last page")
	return cmd
}

type balanceOutput struct {
	CoinType        string           `json:"coinType"`
	CoinObjectCount uint64           `json:"coinObjectCount"`
	TotalBalance    *gqltypes.BigInt `json:"totalBalance,omitempty"`
	Formatted       string           `json:"formatted,omitempty"`
}

// formatBalance renders an amount of the smallest coin units as a decimal number of whole coins.
func formatBalance(total *gqltypes.BigInt, decimals int32) string {
	return decimal.NewFromBigInt(total.Int(), -decimals).String()
}

func (rc *RootCommand) balanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <address>",
		Short: "Fetch the balance of a coin type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := gqltypes.ParseSuiAddress(args[0])
			if err != nil {
				return err
			}
			decimals, err := cmd.Flags().GetInt32(decimalsFlag)
			if err != nil {
				return err
			}

			out := balanceOutput{CoinType: "0x2::sui::SUI"}
			var coinType *string
			if cmd.Flags().Changed(coinTypeFlag) {
				out.CoinType, _ = cmd.Flags().GetString(coinTypeFlag)
				coinType = &out.CoinType
			}

			balance, err := rc.Provider().FetchBalance(cmd.Context(), owner, coinType)
			if err != nil {
				return err
			}
			out.CoinObjectCount = balance.CoinObjectCount
			out.TotalBalance = balance.TotalBalance
			if balance.TotalBalance != nil {
				out.Formatted = formatBalance(balance.TotalBalance, decimals)
			}
			return printJson(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().String(coinTypeFlag, "", "coin type, SUI if omitted")
	cmd.Flags().Int32(decimalsFlag, suiDecimals, "decimals of the coin used to format the total")
	return cmd
}

func (rc *RootCommand) transactionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tx <digest>",
		Aliases: []string{"transaction"},
		Short:   "Fetch a transaction with its gas input and effects",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := rc.Provider().FetchTransaction(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if tx == nil {
				return fmt.Errorf("transaction %s: %w", args[0], errNotFound)
			}
			return printJson(cmd.OutOrStdout(), tx)
		},
	}
}

func (rc *RootCommand) chainIdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chain-id",
		Short: "Print the chain identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			chainId, err := rc.Provider().FetchChainId(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), chainId)
			return err
		},
	}
}

func (rc *RootCommand) protocolConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "protocol-config",
		Short: "Fetch the protocol config, the current one if no version is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, err := optionalUint64(cmd, versionFlag)
			if err != nil {
				return err
			}
			cfg, err := rc.Provider().FetchProtocolConfig(cmd.Context(), version)
			if err != nil {
				return err
			}
			return printJson(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().Uint64(versionFlag, 0, "protocol version")
	return cmd
}

// decodePublicKey accepts hex with an optional 0x prefix or standard base64.
func decodePublicKey(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") {
		return hex.DecodeString(s[2:])
	}
	if key, err := hex.DecodeString(s); err == nil {
		return key, nil
	}
	return base64.StdEncoding.DecodeString(s)
}

func addressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address <public-key>",
		Short: "Derive the account address of a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemeName, err := cmd.Flags().GetString(schemeFlag)
			if err != nil {
				return err
			}
			scheme, err := types.ParseSignatureScheme(schemeName)
			if err != nil {
				return err
			}
			key, err := decodePublicKey(args[0])
			if err != nil {
				return fmt.Errorf("invalid public key encoding: %w", err)
			}
			address, err := types.AddressFromPublicKey(scheme, key)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), address.Hex())
			return err
		},
	}
	cmd.Flags().String(schemeFlag, types.SchemeEd25519.String(), "signature scheme: ed25519|secp256k1|secp256r1")
	return cmd
}
