package receipts

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"splittab/internal/core"
	"splittab/internal/money"
	"splittab/internal/render"
	"splittab/internal/split"
)

var (
	ErrMissingName       = errors.New("receipt name is required")
	ErrNoItems           = errors.New("receipt must have at least one item")
	ErrNoParticipants    = errors.New("receipt must have at least one participant")
	ErrNoAssignedItems   = errors.New("no assigned items")
	ErrFriendNotOnReceipt = errors.New("friend is not a participant on this receipt")
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File, contentType string) (string, error)
}

type Service struct {
	repo    Repository
	friends core.FriendReader
	storage Storage
}

func NewService(repo Repository, friends core.FriendReader, storage Storage) *Service {
	return &Service{repo: repo, friends: friends, storage: storage}
}

// --------------------------------------------------
// Create receipt
// --------------------------------------------------
// Hard failures (missing name, no items, no participants) block the
// save. A total mismatch is a soft warning carried in the result; the
// save goes through.
func (s *Service) CreateReceipt(ctx context.Context, receipt *Receipt) (split.ValidationResult, error) {
	if err := validateReceipt(receipt); err != nil {
		return split.ValidationResult{}, err
	}
	normalizeItems(receipt)

	result := s.validateTotal(receipt)

	if err := s.repo.Save(ctx, receipt); err != nil {
		return split.ValidationResult{}, err
	}
	return result, nil
}

// --------------------------------------------------
// Update receipt (full replace of items/assignments)
// --------------------------------------------------
func (s *Service) UpdateReceipt(ctx context.Context, receipt *Receipt) (split.ValidationResult, error) {
	if err := validateReceipt(receipt); err != nil {
		return split.ValidationResult{}, err
	}
	normalizeItems(receipt)

	result := s.validateTotal(receipt)

	if err := s.repo.Update(ctx, receipt); err != nil {
		return split.ValidationResult{}, err
	}
	return result, nil
}

// --------------------------------------------------
// Get receipt with computed bills
// --------------------------------------------------
// Bills are rebuilt from the stored items on every call; nothing
// derived is persisted.
func (s *Service) GetReceipt(ctx context.Context, ownerID, id string) (*Receipt, []split.FriendBill, error) {
	receipt, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}

	bills, _, err := s.bills(ctx, receipt)
	if err != nil {
		return nil, nil, err
	}
	return receipt, bills, nil
}

// --------------------------------------------------
// Final amounts (authoritative per-friend totals)
// --------------------------------------------------
// A receipt with no assigned items has no final amounts; callers treat
// that condition as an empty result, not a failure.
func (s *Service) FinalAmounts(ctx context.Context, ownerID, id string) ([]FinalAmount, error) {
	receipt, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if !split.HasAssignments(receipt.Items) {
		return nil, ErrNoAssignedItems
	}

	bills, refs, err := s.bills(ctx, receipt)
	if err != nil {
		return nil, err
	}

	seqByID := make(map[string]int64, len(refs))
	for _, ref := range refs {
		seqByID[ref.ID] = ref.Seq
	}

	amounts := make([]FinalAmount, len(bills))
	for i, bill := range bills {
		amounts[i] = FinalAmount{
			ID:          seqByID[bill.Friend.ID],
			Name:        bill.Friend.Name,
			AmountToPay: bill.TotalAmount,
		}
	}
	return amounts, nil
}

// --------------------------------------------------
// Participant roster for one receipt
// --------------------------------------------------
func (s *Service) ReceiptFriends(ctx context.Context, ownerID, id string) ([]core.FriendRef, error) {
	receipt, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.friends.FriendsByIDs(ctx, ownerID, receipt.Participants)
}

// --------------------------------------------------
// Change calculation
// --------------------------------------------------
// Positive change is due back to the friend, negative means they still
// owe. The tendered amount is validated before anything else runs.
func (s *Service) CalculateChange(ctx context.Context, ownerID, receiptID string, friendID int64, amountPaid string) (float64, error) {
	amounts, err := s.FinalAmounts(ctx, ownerID, receiptID)
	if err != nil {
		return 0, err
	}

	for _, amount := range amounts {
		if amount.ID == friendID {
			return split.Change(amount.AmountToPay, amountPaid)
		}
	}
	return 0, ErrFriendNotOnReceipt
}

// --------------------------------------------------
// Plain-text receipt rendering
// --------------------------------------------------
func (s *Service) RenderText(ctx context.Context, ownerID, id string) (string, error) {
	receipt, bills, err := s.GetReceipt(ctx, ownerID, id)
	if err != nil {
		return "", err
	}
	return render.ReceiptText(receipt.Name, bills, render.DefaultLineWidth), nil
}

// --------------------------------------------------
// Attach receipt image
// --------------------------------------------------
func (s *Service) AttachImage(ctx context.Context, ownerID, id string, file multipart.File, filename, contentType string) (string, error) {
	if _, err := s.repo.Get(ctx, ownerID, id); err != nil {
		return "", err
	}

	if err := ValidateImageExtension(filename); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("receipts/%s/%s%s", ownerID, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImageURL(ctx, ownerID, id, url); err != nil {
		return "", err
	}
	return url, nil
}

// --------------------------------------------------
// core.ReceiptReader (used by the friends domain)
// --------------------------------------------------
func (s *Service) SummariesForFriend(ctx context.Context, ownerID, friendID string) ([]core.ReceiptSummary, error) {
	list, err := s.repo.ListByParticipant(ctx, ownerID, friendID)
	if err != nil {
		return nil, err
	}

	summaries := make([]core.ReceiptSummary, 0, len(list))
	for _, receipt := range list {
		bills, _, err := s.bills(ctx, receipt)
		if err != nil {
			return nil, err
		}
		for _, bill := range bills {
			if bill.Friend.ID == friendID {
				summaries = append(summaries, core.ReceiptSummary{
					ReceiptID:   receipt.ID,
					ReceiptName: receipt.Name,
					AmountToPay: bill.TotalAmount,
				})
				break
			}
		}
	}
	return summaries, nil
}

// --------------------------------------------------
// internals
// --------------------------------------------------

func validateReceipt(receipt *Receipt) error {
	if strings.TrimSpace(receipt.Name) == "" {
		return ErrMissingName
	}
	if len(receipt.Items) == 0 {
		return ErrNoItems
	}
	if len(receipt.Participants) == 0 {
		return ErrNoParticipants
	}
	return nil
}

// normalizeItems expands per-unit items that arrive without subitems so
// each unit can be assigned individually later.
func normalizeItems(receipt *Receipt) {
	for i := range receipt.Items {
		item := &receipt.Items[i]
		if !item.SplitEqually && len(item.Subitems) == 0 {
			item.Subitems = split.MakeSubitems(*item)
		}
	}
}

func (s *Service) validateTotal(receipt *Receipt) split.ValidationResult {
	expected := money.ParseAmount(receipt.ExpectedTotal).Float()
	return split.Validate(expected, receipt.Items, receipt.Tax, receipt.Tip)
}

// bills resolves the participant roster and allocates the receipt.
func (s *Service) bills(ctx context.Context, receipt *Receipt) ([]split.FriendBill, []core.FriendRef, error) {
	refs, err := s.friends.FriendsByIDs(ctx, receipt.OwnerID, receipt.Participants)
	if err != nil {
		return nil, nil, err
	}

	participants := make([]split.Friend, len(refs))
	for i, ref := range refs {
		participants[i] = split.Friend{ID: ref.ID, Name: ref.Name, Avatar: ref.Avatar}
	}
	return split.Allocate(receipt.Items, participants), refs, nil
}
