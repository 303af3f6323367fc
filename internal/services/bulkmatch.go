package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type MatchScope string

const (
	ScopeAll     MatchScope = "all"
	ScopeEmail   MatchScope = "email"
	ScopeName    MatchScope = "name"
	ScopeCompany MatchScope = "company"
)

type MatchKind string

const (
	MatchKindContact  MatchKind = "contact"
	MatchKindSupplier MatchKind = "supplier"
)

// MatchResult is one outcome for one query. Non-domain queries yield exactly
// one result; domain queries yield one result per record on the domain.
type MatchResult struct {
	Query        string          `json:"query"`
	Found        bool            `json:"found"`
	Kind         MatchKind       `json:"kind,omitempty"`
	Contact      *types.Contact  `json:"contact,omitempty"`
	Supplier     *types.Supplier `json:"supplier,omitempty"`
	MatchedField string          `json:"matched_field,omitempty"`
	MatchedTerm  string          `json:"matched_term,omitempty"`
}

// genericWords are trade boilerplate tokens that never identify a
// counterparty on their own; they are dropped from every query before
// matching, alongside the user's exclusion vocabulary.
var genericWords = map[string]bool{
	"marine": true, "maritime": true, "shipping": true, "ship": true,
	"shipmanagement": true, "management": true, "chartering": true,
	"trading": true, "bunker": true, "bunkers": true, "bunkering": true,
	"fuel": true, "fuels": true, "oil": true, "petroleum": true,
	"energy": true, "tanker": true, "tankers": true,
	"group": true, "holdings": true, "services": true, "international": true,
	"global": true, "company": true, "co": true, "corp": true,
	"corporation": true, "ltd": true, "limited": true, "llc": true,
	"inc": true, "gmbh": true, "sa": true, "srl": true, "bv": true,
	"pte": true, "dmcc": true, "fzc": true, "fze": true, "as": true,
}

// fieldTokenSeparators split a candidate field into the sub-tokens a query
// token must equal exactly; substring hits are never matches.
func isFieldTokenSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '-', '_', '.', '@', ',', ';':
		return true
	}
	return false
}

func splitFieldTokens(value string) []string {
	return strings.FieldsFunc(strings.ToLower(value), isFieldTokenSeparator)
}

// extractDomain pulls the "@domain" suffix from a query; everything from the
// first '@' to the end of the query is the domain.
func extractDomain(query string) string {
	i := strings.Index(query, "@")
	if i < 0 {
		return ""
	}
	return query[i:]
}

// matchCandidate is the tagged contact-or-supplier variant the token matcher
// walks, so one loop serves both record kinds.
type matchCandidate struct {
	kind     MatchKind
	contact  *types.Contact
	supplier *types.Supplier
	// people are the supplier's named contacts; unused for contact kind.
	people []*types.SupplierContact
}

type candidateField struct {
	name  string
	scope MatchScope
	value func(matchCandidate) string
}

// Field priority per kind: for a contact, name before email before company;
// for a supplier, company name before contact person before contact email
// before general email.
var contactMatchFields = []candidateField{
	{name: "name", scope: ScopeName, value: func(c matchCandidate) string { return c.contact.Name }},
	{name: "email", scope: ScopeEmail, value: func(c matchCandidate) string { return c.contact.Email }},
	{name: "company", scope: ScopeCompany, value: func(c matchCandidate) string { return c.contact.Company }},
}

var supplierMatchFields = []candidateField{
	{name: "company", scope: ScopeCompany, value: func(c matchCandidate) string { return c.supplier.Name }},
	{name: "contact_person", scope: ScopeName, value: func(c matchCandidate) string {
		names := make([]string, 0, len(c.people))
		for _, p := range c.people {
			names = append(names, p.Name)
		}
		return strings.Join(names, " ")
	}},
	{name: "contact_email", scope: ScopeEmail, value: func(c matchCandidate) string {
		emails := make([]string, 0, len(c.people))
		for _, p := range c.people {
			emails = append(emails, p.Email)
		}
		return strings.Join(emails, " ")
	}},
	{name: "general_email", scope: ScopeEmail, value: func(c matchCandidate) string { return c.supplier.Email }},
}

func fieldsForKind(kind MatchKind) []candidateField {
	if kind == MatchKindSupplier {
		return supplierMatchFields
	}
	return contactMatchFields
}

func fieldInScope(f candidateField, scope MatchScope) bool {
	return scope == "" || scope == ScopeAll || f.scope == scope
}

// matchToken finds the first candidate with a sub-token exactly equal to the
// query token, walking candidates in order and fields in priority order.
func matchToken(token string, candidates []matchCandidate, scope MatchScope) (matchCandidate, string, bool) {
	for _, cand := range candidates {
		for _, f := range fieldsForKind(cand.kind) {
			if !fieldInScope(f, scope) {
				continue
			}
			for _, sub := range splitFieldTokens(f.value(cand)) {
				if sub == token {
					return cand, f.name, true
				}
			}
		}
	}
	return matchCandidate{}, "", false
}

// queryTokens lower-cases and splits a query, dropping generic words and
// excluded vocabulary. An empty return means the query cannot drive a match.
func queryTokens(query string, excluded map[string]bool) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(strings.TrimSpace(query))) {
		if genericWords[tok] || excluded[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func notFound(query string) *MatchResult {
	return &MatchResult{Query: query}
}

func foundResult(query string, cand matchCandidate, field, term string) *MatchResult {
	return &MatchResult{
		Query:        query,
		Found:        true,
		Kind:         cand.kind,
		Contact:      cand.contact,
		Supplier:     cand.supplier,
		MatchedField: field,
		MatchedTerm:  term,
	}
}

// TermFrequencies counts how often each matched term drove a result, for
// surfacing the common (usually over-generic) terms to the user.
func TermFrequencies(results []*MatchResult) map[string]int {
	freq := map[string]int{}
	for _, r := range results {
		if r.Found && r.MatchedTerm != "" {
			freq[r.MatchedTerm]++
		}
	}
	return freq
}

// ApplyExclusions removes every match whose matched term is excluded, without
// re-running the batch. Not-found results are untouched.
func ApplyExclusions(results []*MatchResult, excluded map[string]bool) []*MatchResult {
	out := make([]*MatchResult, 0, len(results))
	for _, r := range results {
		if r.Found && excluded[r.MatchedTerm] {
			continue
		}
		out = append(out, r)
	}
	return out
}

type contactCorpusStore interface {
	ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]*types.Contact, error)
	SearchEmailDomain(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, domain string) ([]*types.Contact, error)
}

type supplierCorpusStore interface {
	ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]*types.Supplier, error)
	SearchEmailDomain(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, domain string) ([]*types.Supplier, error)
}

type supplierPeopleStore interface {
	ListBySupplierIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.SupplierContact, error)
}

type vocabularyStore interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ExclusionVocabulary, error)
}

type BulkMatchService interface {
	// MatchAll runs one batch of queries against the workspace corpus.
	// Queries are processed sequentially in order; a store failure degrades
	// the affected query to "not found" and never aborts the batch.
	MatchAll(ctx context.Context, workspaceID, userID uuid.UUID, queries []string, scope MatchScope) ([]*MatchResult, error)
}

type bulkMatchService struct {
	db              *gorm.DB
	log             *logger.Logger
	contactStore    contactCorpusStore
	supplierStore   supplierCorpusStore
	peopleStore     supplierPeopleStore
	vocabularyStore vocabularyStore
}

func NewBulkMatchService(
	db *gorm.DB,
	log *logger.Logger,
	contactStore contactCorpusStore,
	supplierStore supplierCorpusStore,
	peopleStore supplierPeopleStore,
	vocabularyStore vocabularyStore,
) BulkMatchService {
	serviceLog := log.With("service", "BulkMatchService")
	return &bulkMatchService{
		db:              db,
		log:             serviceLog,
		contactStore:    contactStore,
		supplierStore:   supplierStore,
		peopleStore:     peopleStore,
		vocabularyStore: vocabularyStore,
	}
}

func (bs *bulkMatchService) MatchAll(ctx context.Context, workspaceID, userID uuid.UUID, queries []string, scope MatchScope) ([]*MatchResult, error) {
	excluded := bs.loadVocabulary(ctx, userID)

	contactCands, contactErr := bs.loadContacts(ctx, workspaceID)
	if contactErr != nil {
		bs.log.Warn("contact corpus load failed, queries will degrade to not-found", "error", contactErr)
	}

	// Supplier corpus is loaded once, on the first query that needs it.
	var supplierCands []matchCandidate
	var supplierLoaded bool

	results := make([]*MatchResult, 0, len(queries))
	for _, raw := range queries {
		query := strings.ToLower(strings.TrimSpace(raw))
		if query == "" {
			results = append(results, notFound(raw))
			continue
		}

		if domain := extractDomain(query); domain != "" {
			results = append(results, bs.matchDomain(ctx, workspaceID, raw, domain)...)
			continue
		}

		tokens := queryTokens(query, excluded)
		var result *MatchResult
		for _, token := range tokens {
			if cand, field, ok := matchToken(token, contactCands, scope); ok {
				result = foundResult(raw, cand, field, token)
				break
			}
			if !supplierLoaded {
				var err error
				supplierCands, err = bs.loadSuppliers(ctx, workspaceID)
				supplierLoaded = true
				if err != nil {
					bs.log.Warn("supplier corpus load failed, continuing with contacts only", "error", err)
				}
			}
			if cand, field, ok := matchToken(token, supplierCands, scope); ok {
				result = foundResult(raw, cand, field, token)
				break
			}
		}
		if result == nil {
			result = notFound(raw)
		}
		results = append(results, result)
	}
	return results, nil
}

// matchDomain emits one result per corpus record whose email sits on the
// domain; whole-word and exclusion logic never apply here.
func (bs *bulkMatchService) matchDomain(ctx context.Context, workspaceID uuid.UUID, rawQuery, domain string) []*MatchResult {
	var results []*MatchResult

	contacts, err := bs.contactStore.SearchEmailDomain(ctx, nil, workspaceID, domain)
	if err != nil {
		bs.log.Warn("domain search failed for contacts", "domain", domain, "error", err)
	}
	for _, c := range contacts {
		results = append(results, foundResult(rawQuery, matchCandidate{kind: MatchKindContact, contact: c}, "email_domain", domain))
	}

	suppliers, err := bs.supplierStore.SearchEmailDomain(ctx, nil, workspaceID, domain)
	if err != nil {
		bs.log.Warn("domain search failed for suppliers", "domain", domain, "error", err)
	}
	for _, s := range suppliers {
		results = append(results, foundResult(rawQuery, matchCandidate{kind: MatchKindSupplier, supplier: s}, "email_domain", domain))
	}

	if len(results) == 0 {
		results = append(results, notFound(rawQuery))
	}
	return results
}

func (bs *bulkMatchService) loadVocabulary(ctx context.Context, userID uuid.UUID) map[string]bool {
	excluded := map[string]bool{}
	vocab, err := bs.vocabularyStore.GetByUserID(ctx, nil, userID)
	if err != nil {
		bs.log.Warn("exclusion vocabulary load failed, matching without it", "error", err)
		return excluded
	}
	for _, term := range DecodeVocabularyTerms(vocab) {
		excluded[term] = true
	}
	return excluded
}

func (bs *bulkMatchService) loadContacts(ctx context.Context, workspaceID uuid.UUID) ([]matchCandidate, error) {
	contacts, err := bs.contactStore.ListByWorkspace(ctx, nil, workspaceID)
	if err != nil {
		return nil, err
	}
	cands := make([]matchCandidate, 0, len(contacts))
	for _, c := range contacts {
		cands = append(cands, matchCandidate{kind: MatchKindContact, contact: c})
	}
	return cands, nil
}

func (bs *bulkMatchService) loadSuppliers(ctx context.Context, workspaceID uuid.UUID) ([]matchCandidate, error) {
	suppliers, err := bs.supplierStore.ListByWorkspace(ctx, nil, workspaceID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(suppliers))
	for _, s := range suppliers {
		ids = append(ids, s.ID)
	}
	people, err := bs.peopleStore.ListBySupplierIDs(ctx, nil, ids)
	if err != nil {
		bs.log.Warn("supplier contacts load failed, matching company fields only", "error", err)
	}
	peopleByOwner := map[uuid.UUID][]*types.SupplierContact{}
	for _, p := range people {
		peopleByOwner[p.SupplierID] = append(peopleByOwner[p.SupplierID], p)
	}
	cands := make([]matchCandidate, 0, len(suppliers))
	for _, s := range suppliers {
		cands = append(cands, matchCandidate{kind: MatchKindSupplier, supplier: s, people: peopleByOwner[s.ID]})
	}
	return cands, nil
}
