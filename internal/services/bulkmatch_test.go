package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/bunkerdesk/bunkerdesk-backend/internal/logger"
	"github.com/bunkerdesk/bunkerdesk-backend/internal/types"
)

type fakeContactStore struct {
	contacts []*types.Contact
	listErr  error
}

func (f *fakeContactStore) ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]*types.Contact, error) {
	return f.contacts, f.listErr
}

func (f *fakeContactStore) SearchEmailDomain(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, domain string) ([]*types.Contact, error) {
	var out []*types.Contact
	for _, c := range f.contacts {
		if strings.Contains(strings.ToLower(c.Email), domain) {
			out = append(out, c)
		}
	}
	return out, f.listErr
}

type fakeSupplierStore struct {
	suppliers []*types.Supplier
}

func (f *fakeSupplierStore) ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) ([]*types.Supplier, error) {
	return f.suppliers, nil
}

func (f *fakeSupplierStore) SearchEmailDomain(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, domain string) ([]*types.Supplier, error) {
	var out []*types.Supplier
	for _, s := range f.suppliers {
		if strings.Contains(strings.ToLower(s.Email), domain) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakePeopleStore struct {
	people []*types.SupplierContact
}

func (f *fakePeopleStore) ListBySupplierIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.SupplierContact, error) {
	return f.people, nil
}

type fakeVocabularyStore struct {
	terms []string
}

func (f *fakeVocabularyStore) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.ExclusionVocabulary, error) {
	raw, err := json.Marshal(f.terms)
	if err != nil {
		return nil, err
	}
	return &types.ExclusionVocabulary{UserID: userID, Terms: datatypes.JSON(raw)}, nil
}

func testMatcher(t *testing.T, contacts *fakeContactStore, suppliers *fakeSupplierStore, people *fakePeopleStore, vocab *fakeVocabularyStore) BulkMatchService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	if contacts == nil {
		contacts = &fakeContactStore{}
	}
	if suppliers == nil {
		suppliers = &fakeSupplierStore{}
	}
	if people == nil {
		people = &fakePeopleStore{}
	}
	if vocab == nil {
		vocab = &fakeVocabularyStore{}
	}
	return NewBulkMatchService(nil, log, contacts, suppliers, people, vocab)
}

func TestMatchTokenWholeWordOnly(t *testing.T) {
	john := matchCandidate{kind: MatchKindContact, contact: &types.Contact{Name: "John Smith"}}
	johnson := matchCandidate{kind: MatchKindContact, contact: &types.Contact{Name: "Robert Johnson"}}
	stJohns := matchCandidate{kind: MatchKindContact, contact: &types.Contact{Company: "St. Johns Maritime"}}

	cand, field, ok := matchToken("john", []matchCandidate{johnson, john}, ScopeAll)
	if !ok || cand.contact.Name != "John Smith" || field != "name" {
		t.Fatalf("\"john\" must match John Smith on name, not Johnson: ok=%v field=%q", ok, field)
	}

	// "St. Johns" splits on '.' and ' ' into [st johns]; "john" is not a
	// sub-token of it.
	if _, _, ok := matchToken("john", []matchCandidate{stJohns, johnson}, ScopeAll); ok {
		t.Fatalf("\"john\" must not substring-match Johnson or Johns")
	}

	if _, _, ok := matchToken("johns", []matchCandidate{stJohns}, ScopeAll); !ok {
		t.Fatalf("\"johns\" is a whole sub-token of \"St. Johns\" and must match")
	}
}

func TestMatchTokenFieldPriority(t *testing.T) {
	// The same token sits in one candidate's company and a later candidate's
	// name; candidate order wins over field priority.
	first := matchCandidate{kind: MatchKindContact, contact: &types.Contact{Name: "Alice Lee", Company: "Harbor Logistics"}}
	second := matchCandidate{kind: MatchKindContact, contact: &types.Contact{Name: "Harbor Jones"}}

	cand, field, ok := matchToken("harbor", []matchCandidate{first, second}, ScopeAll)
	if !ok || field != "company" || cand.contact.Name != "Alice Lee" {
		t.Fatalf("earlier candidate must win: field=%q", field)
	}

	// Within one candidate, name is checked before company.
	both := matchCandidate{kind: MatchKindContact, contact: &types.Contact{Name: "Pacific Chen", Company: "Pacific Traders"}}
	_, field, ok = matchToken("pacific", []matchCandidate{both}, ScopeAll)
	if !ok || field != "name" {
		t.Fatalf("name must outrank company on the same candidate: field=%q", field)
	}
}

func TestMatchTokenScopeRestriction(t *testing.T) {
	cand := matchCandidate{kind: MatchKindContact, contact: &types.Contact{
		Name: "Alice Lee", Email: "alice@harbor.example", Company: "Harbor Logistics",
	}}

	if _, _, ok := matchToken("harbor", []matchCandidate{cand}, ScopeName); ok {
		t.Fatalf("name scope must not inspect company or email")
	}
	_, field, ok := matchToken("harbor", []matchCandidate{cand}, ScopeCompany)
	if !ok || field != "company" {
		t.Fatalf("company scope: ok=%v field=%q", ok, field)
	}
	_, field, ok = matchToken("alice", []matchCandidate{cand}, ScopeEmail)
	if !ok || field != "email" {
		t.Fatalf("email local part must match in email scope: ok=%v field=%q", ok, field)
	}
}

func TestQueryTokensDropsGenericAndExcluded(t *testing.T) {
	tokens := queryTokens("Nordic Marine Shipping Ltd", map[string]bool{"nordic": true})
	if len(tokens) != 0 {
		t.Fatalf("every token is generic or excluded, got=%v", tokens)
	}

	tokens = queryTokens("Nordic Marine Shipping Ltd", nil)
	if len(tokens) != 1 || tokens[0] != "nordic" {
		t.Fatalf("only the distinctive token should survive, got=%v", tokens)
	}
}

func TestMatchAllBasic(t *testing.T) {
	contacts := &fakeContactStore{contacts: []*types.Contact{
		{ID: uuid.New(), Name: "Anders Berg", Email: "anders@nordic.example", Company: "Nordic Chartering"},
	}}
	suppliers := &fakeSupplierStore{suppliers: []*types.Supplier{
		{ID: uuid.New(), Name: "Piraeus Fuel Supply", Email: "ops@piraeusfuel.example"},
	}}
	svc := testMatcher(t, contacts, suppliers, nil, nil)

	results, err := svc.MatchAll(context.Background(), uuid.New(), uuid.New(),
		[]string{"Anders Marine Ltd", "Piraeus Bunkers", "completely unknown", "  "}, ScopeAll)
	if err != nil {
		t.Fatalf("MatchAll: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("one result per non-domain query: want=4 got=%d", len(results))
	}
	if !results[0].Found || results[0].Kind != MatchKindContact || results[0].MatchedTerm != "anders" {
		t.Fatalf("query 1: %+v", results[0])
	}
	if !results[1].Found || results[1].Kind != MatchKindSupplier || results[1].MatchedField != "company" {
		t.Fatalf("query 2 must fall through to suppliers: %+v", results[1])
	}
	if results[2].Found || results[3].Found {
		t.Fatalf("unknown and blank queries must be not-found")
	}
	if results[2].Query != "completely unknown" {
		t.Fatalf("result must echo the raw query, got=%q", results[2].Query)
	}
}

func TestMatchAllContactsBeforeSuppliers(t *testing.T) {
	contacts := &fakeContactStore{contacts: []*types.Contact{
		{ID: uuid.New(), Name: "Harbor Contact", Email: "x@one.example"},
	}}
	suppliers := &fakeSupplierStore{suppliers: []*types.Supplier{
		{ID: uuid.New(), Name: "Harbor Supplier"},
	}}
	svc := testMatcher(t, contacts, suppliers, nil, nil)

	results, err := svc.MatchAll(context.Background(), uuid.New(), uuid.New(), []string{"harbor"}, ScopeAll)
	if err != nil {
		t.Fatalf("MatchAll: %v", err)
	}
	if results[0].Kind != MatchKindContact {
		t.Fatalf("contact corpus must be consulted first, got kind=%q", results[0].Kind)
	}
}

func TestMatchAllDomainMode(t *testing.T) {
	acme1 := &types.Contact{ID: uuid.New(), Name: "A", Email: "ops@acme.example"}
	acme2 := &types.Contact{ID: uuid.New(), Name: "B", Email: "chartering@acme.example"}
	other := &types.Contact{ID: uuid.New(), Name: "C", Email: "c@other.example"}
	contacts := &fakeContactStore{contacts: []*types.Contact{acme1, acme2, other}}
	svc := testMatcher(t, contacts, nil, nil, nil)

	results, err := svc.MatchAll(context.Background(), uuid.New(), uuid.New(),
		[]string{"ukbrokers@acme.example"}, ScopeAll)
	if err != nil {
		t.Fatalf("MatchAll: %v", err)
	}
	// One result per record on the domain, not one per query.
	if len(results) != 2 {
		t.Fatalf("domain query must fan out per record: want=2 got=%d", len(results))
	}
	for _, r := range results {
		if !r.Found || r.MatchedField != "email_domain" || r.MatchedTerm != "@acme.example" {
			t.Fatalf("domain result wrong: %+v", r)
		}
	}
}

func TestMatchAllDomainModeNoHits(t *testing.T) {
	svc := testMatcher(t, &fakeContactStore{}, &fakeSupplierStore{}, nil, nil)
	results, err := svc.MatchAll(context.Background(), uuid.New(), uuid.New(),
		[]string{"nobody@nowhere.example"}, ScopeAll)
	if err != nil {
		t.Fatalf("MatchAll: %v", err)
	}
	if len(results) != 1 || results[0].Found {
		t.Fatalf("empty domain must degrade to a single not-found: %+v", results)
	}
}

func TestMatchAllExclusionVocabulary(t *testing.T) {
	contacts := &fakeContactStore{contacts: []*types.Contact{
		{ID: uuid.New(), Name: "Baltic Exchange", Email: "x@baltic.example"},
	}}
	svc := testMatcher(t, contacts, nil, nil, &fakeVocabularyStore{terms: []string{"baltic"}})

	results, err := svc.MatchAll(context.Background(), uuid.New(), uuid.New(),
		[]string{"Baltic Freight"}, ScopeAll)
	if err != nil {
		t.Fatalf("MatchAll: %v", err)
	}
	// "baltic" is excluded and "freight" matches nothing.
	if results[0].Found {
		t.Fatalf("excluded term must not drive a match: %+v", results[0])
	}
}

func TestMatchAllSupplierContactPerson(t *testing.T) {
	supplier := &types.Supplier{ID: uuid.New(), Name: "Gulf Energy DMCC"}
	suppliers := &fakeSupplierStore{suppliers: []*types.Supplier{supplier}}
	people := &fakePeopleStore{people: []*types.SupplierContact{
		{SupplierID: supplier.ID, Name: "Tarek Haddad", Email: "tarek@gulf.example"},
	}}
	svc := testMatcher(t, nil, suppliers, people, nil)

	results, err := svc.MatchAll(context.Background(), uuid.New(), uuid.New(), []string{"tarek"}, ScopeAll)
	if err != nil {
		t.Fatalf("MatchAll: %v", err)
	}
	if !results[0].Found || results[0].MatchedField != "contact_person" {
		t.Fatalf("supplier person name must match: %+v", results[0])
	}
	if results[0].Supplier == nil || results[0].Supplier.ID != supplier.ID {
		t.Fatalf("result must carry the owning supplier")
	}
}

func TestMatchAllContactStoreFailureDegrades(t *testing.T) {
	contacts := &fakeContactStore{listErr: fmt.Errorf("db down")}
	suppliers := &fakeSupplierStore{suppliers: []*types.Supplier{
		{ID: uuid.New(), Name: "Gulf Energy"},
	}}
	svc := testMatcher(t, contacts, suppliers, nil, nil)

	results, err := svc.MatchAll(context.Background(), uuid.New(), uuid.New(), []string{"gulf"}, ScopeAll)
	if err != nil {
		t.Fatalf("a store failure must not abort the batch: %v", err)
	}
	if !results[0].Found || results[0].Kind != MatchKindSupplier {
		t.Fatalf("suppliers must still be searched: %+v", results[0])
	}
}

func TestTermFrequenciesAndApplyExclusions(t *testing.T) {
	results := []*MatchResult{
		{Query: "a", Found: true, MatchedTerm: "nordic"},
		{Query: "b", Found: true, MatchedTerm: "nordic"},
		{Query: "c", Found: true, MatchedTerm: "gulf"},
		{Query: "d"},
	}

	freq := TermFrequencies(results)
	if freq["nordic"] != 2 || freq["gulf"] != 1 || len(freq) != 2 {
		t.Fatalf("frequencies wrong: %v", freq)
	}

	kept := ApplyExclusions(results, map[string]bool{"nordic": true})
	if len(kept) != 2 {
		t.Fatalf("want 2 kept (gulf match + not-found), got=%d", len(kept))
	}
	if kept[0].Query != "c" || kept[1].Query != "d" {
		t.Fatalf("order must be preserved: %q, %q", kept[0].Query, kept[1].Query)
	}
}

func TestExtractDomain(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"ukbrokers@acme.example", "@acme.example"},
		{"@acme.example", "@acme.example"},
		{"a@b@c", "@b@c"},
		{"no domain here", ""},
	}
	for _, tc := range cases {
		if got := extractDomain(tc.query); got != tc.want {
			t.Fatalf("extractDomain(%q): want=%q got=%q", tc.query, tc.want, got)
		}
	}
}
