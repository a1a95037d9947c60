package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/tos-network/gbank/common"
	"github.com/tos-network/gbank/core/bank"
	"github.com/tos-network/gbank/core/types"
	"github.com/tos-network/gbank/crypto"
	"github.com/tos-network/gbank/hostdb/leveldb"
	"github.com/tos-network/gbank/internal/flags"
	"github.com/urfave/cli/v2"
)

var (
	depositorFlag = &cli.StringFlag{
		Name:     "depositor",
		Usage:    "Depositor account id (hex)",
		Required: true,
		Category: flags.LedgerCategory,
	}
	faucetFlag = &cli.StringFlag{
		Name:     "faucet",
		Usage:    "Issuing faucet account id (hex)",
		Required: true,
		Category: flags.LedgerCategory,
	}
	amountFlag = &cli.Uint64Flag{
		Name:     "amount",
		Usage:    "Asset amount in base units",
		Required: true,
		Category: flags.LedgerCategory,
	}
	tagFlag = &cli.Uint64Flag{
		Name:     "tag",
		Usage:    "Note tag (defaults to the depositor's local tag)",
		Category: flags.NoteCategory,
	}
	auxFlag = &cli.Uint64Flag{
		Name:     "aux",
		Usage:    "Application-defined note aux value",
		Category: flags.NoteCategory,
	}
	noteTypeFlag = &cli.StringFlag{
		Name:     "notetype",
		Usage:    `Delivery mode of the emitted note ("public" or "private")`,
		Value:    "public",
		Category: flags.NoteCategory,
	}
	serialFlag = &cli.StringFlag{
		Name:     "serial",
		Usage:    "Note serial number word (hex, random when omitted)",
		Category: flags.NoteCategory,
	}

	initCommand = &cli.Command{
		Action:    initLedger,
		Name:      "init",
		Usage:     "Initialize the ledger account",
		ArgsUsage: " ",
		Description: `
Marks the ledger account as initialized. All balance-changing operations
are rejected until this has run; running it twice is an error.
`,
	}
	depositCommand = &cli.Command{
		Action: deposit,
		Name:   "deposit",
		Usage:  "Credit a depositor with a fungible asset",
		Flags: []cli.Flag{
			depositorFlag,
			faucetFlag,
			amountFlag,
		},
		Description: `
Credits the depositor's balance for the faucet's asset and moves the
asset into the ledger vault. Deposits above the per-call bound are
rejected.
`,
	}
	withdrawCommand = &cli.Command{
		Action: withdraw,
		Name:   "withdraw",
		Usage:  "Debit a depositor and emit a payment note",
		Flags: []cli.Flag{
			depositorFlag,
			faucetFlag,
			amountFlag,
			tagFlag,
			auxFlag,
			noteTypeFlag,
			serialFlag,
		},
		Description: `
Debits the depositor's balance and emits a note carrying the asset,
spendable only by the depositor. The serial number must be fresh;
reusing one reproduces an earlier note's recipient digest.
`,
	}
	balanceCommand = &cli.Command{
		Action: balance,
		Name:   "balance",
		Usage:  "Print a depositor's balance for one faucet",
		Flags: []cli.Flag{
			depositorFlag,
			faucetFlag,
		},
		Description: `
The output of this command is supposed to be machine-readable.
`,
	}
	notesCommand = &cli.Command{
		Action:    notes,
		Name:      "notes",
		Usage:     "List the notes emitted by the ledger",
		ArgsUsage: " ",
	}
)

func openBank(ctx *cli.Context) (*leveldb.Database, *bank.Bank, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}
	db, err := leveldb.New(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	common.Log.Debugf("opened ledger database at %s", cfg.DataDir)
	return db, bank.New(db, crypto.Hasher{}), nil
}

// commitOrDiscard makes a ledger operation all-or-nothing: buffered
// writes reach disk only when the operation succeeded.
func commitOrDiscard(db *leveldb.Database, err error) error {
	if err != nil {
		db.Discard()
		return err
	}
	return db.Commit()
}

func initLedger(ctx *cli.Context) error {
	db, b, err := openBank(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := commitOrDiscard(db, b.Initialize()); err != nil {
		return err
	}
	color.Green("ledger initialized")
	return nil
}

func deposit(ctx *cli.Context) error {
	depositor, err := types.ParseAccountID(ctx.String(depositorFlag.Name))
	if err != nil {
		return err
	}
	faucet, err := types.ParseAccountID(ctx.String(faucetFlag.Name))
	if err != nil {
		return err
	}
	asset := types.NewFungibleAsset(faucet, ctx.Uint64(amountFlag.Name))

	db, b, err := openBank(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := commitOrDiscard(db, b.Deposit(depositor, asset)); err != nil {
		return err
	}
	color.Green("deposited %d from faucet %s", asset.Amount(), faucet.Hex())
	fmt.Printf("balance: %d\n", b.GetBalance(depositor, faucet))
	return nil
}

func withdraw(ctx *cli.Context) error {
	depositor, err := types.ParseAccountID(ctx.String(depositorFlag.Name))
	if err != nil {
		return err
	}
	faucet, err := types.ParseAccountID(ctx.String(faucetFlag.Name))
	if err != nil {
		return err
	}
	asset := types.NewFungibleAsset(faucet, ctx.Uint64(amountFlag.Name))

	serial, err := serialWord(ctx)
	if err != nil {
		return err
	}
	tag := bank.LocalTagForAccount(depositor)
	if ctx.IsSet(tagFlag.Name) {
		tag = types.NewFelt(ctx.Uint64(tagFlag.Name))
	}
	aux := types.NewFelt(ctx.Uint64(auxFlag.Name))
	noteType, err := parseNoteType(ctx.String(noteTypeFlag.Name))
	if err != nil {
		return err
	}

	db, b, err := openBank(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	err = b.WithdrawWithMetadata(depositor, asset, serial, tag, aux, noteType)
	if err := commitOrDiscard(db, err); err != nil {
		return err
	}
	color.Green("withdrew %d of faucet %s", asset.Amount(), faucet.Hex())

	emitted := db.Notes()
	if n := len(emitted); n > 0 {
		note := emitted[n-1]
		fmt.Printf("note:      %s\n", note.ID)
		fmt.Printf("recipient: %s\n", note.Recipient.Hex())
		fmt.Printf("tag:       %#x\n", note.Meta.Tag.Uint64())
	}
	fmt.Printf("balance:   %d\n", b.GetBalance(depositor, faucet))
	return nil
}

func balance(ctx *cli.Context) error {
	depositor, err := types.ParseAccountID(ctx.String(depositorFlag.Name))
	if err != nil {
		return err
	}
	faucet, err := types.ParseAccountID(ctx.String(faucetFlag.Name))
	if err != nil {
		return err
	}

	db, b, err := openBank(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println(b.GetBalance(depositor, faucet))
	return nil
}

func notes(ctx *cli.Context) error {
	db, _, err := openBank(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Index", "ID", "Type", "Tag", "Recipient", "Assets"})
	for i, note := range db.Notes() {
		assets := make([]string, 0, len(note.Assets))
		for _, asset := range note.Assets {
			assets = append(assets, fmt.Sprintf("%d@%s", asset.Amount(), asset.Faucet().Hex()))
		}
		table.Append([]string{
			strconv.Itoa(i),
			note.ID.String(),
			noteTypeString(note.Meta.Type),
			fmt.Sprintf("%#x", note.Meta.Tag.Uint64()),
			note.Recipient.Hex(),
			strings.Join(assets, ","),
		})
	}
	table.Render()
	return nil
}

func serialWord(ctx *cli.Context) (types.Word, error) {
	if s := ctx.String(serialFlag.Name); s != "" {
		return types.ParseWord(s)
	}
	var buf [types.WordBytes]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return types.Word{}, err
	}
	var w types.Word
	for i := 0; i < types.WordLen; i++ {
		w[i] = types.NewFelt(binary.BigEndian.Uint64(buf[8*i:]))
	}
	return w, nil
}

func parseNoteType(s string) (types.NoteType, error) {
	switch strings.ToLower(s) {
	case "public":
		return types.NoteTypePublic, nil
	case "private":
		return types.NoteTypePrivate, nil
	}
	return 0, fmt.Errorf("unknown note type %q", s)
}

func noteTypeString(t types.NoteType) string {
	switch t {
	case types.NoteTypePublic:
		return "public"
	case types.NoteTypePrivate:
		return "private"
	}
	return strconv.Itoa(int(t))
}
