package core

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"jusgestor-backend-go/internal/authz"
	"jusgestor-backend-go/internal/db"
	"jusgestor-backend-go/internal/models"
)

// The fakes below implement the db interfaces in memory. Each write
// path bumps a counter so tests can assert that a denied action left
// the store untouched.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User
	writes int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", db.ErrNotFound, userID)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("%w: user %s", db.ErrNotFound, user.ID)
	}
	r.writes++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListByOffice(_ context.Context, officeID string) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.User
	for _, u := range r.users {
		if u.OfficeID == officeID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) MasterExists(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Role == "master" {
			return true, nil
		}
	}
	return false, nil
}

type fakeOfficeRepo struct {
	mu      sync.Mutex
	offices map[string]*models.Office
	writes  int
	nextID  int
}

func newFakeOfficeRepo() *fakeOfficeRepo {
	return &fakeOfficeRepo{offices: map[string]*models.Office{}}
}

func (r *fakeOfficeRepo) Create(_ context.Context, office *models.Office) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if office.ID == "" {
		r.nextID++
		office.ID = fmt.Sprintf("office-%d", r.nextID)
	}
	cp := *office
	r.offices[office.ID] = &cp
	return office.ID, nil
}

func (r *fakeOfficeRepo) GetByID(_ context.Context, officeID string) (*models.Office, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offices[officeID]
	if !ok {
		return nil, fmt.Errorf("%w: office %s", db.ErrNotFound, officeID)
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOfficeRepo) Update(_ context.Context, office *models.Office) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.offices[office.ID]; !ok {
		return fmt.Errorf("%w: office %s", db.ErrNotFound, office.ID)
	}
	r.writes++
	cp := *office
	r.offices[office.ID] = &cp
	return nil
}

type fakeClientRepo struct {
	mu      sync.Mutex
	clients map[string]*models.Client
	writes  int
	nextID  int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*models.Client{}}
}

func (r *fakeClientRepo) Create(_ context.Context, client *models.Client) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if client.ID == "" {
		r.nextID++
		client.ID = fmt.Sprintf("client-%d", r.nextID)
	}
	cp := *client
	r.clients[client.ID] = &cp
	return client.ID, nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, clientID string) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", db.ErrNotFound, clientID)
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) ListByOffice(_ context.Context, officeID string) ([]*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Client
	for _, c := range r.clients {
		if c.OfficeID == officeID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client *models.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ID]; !ok {
		return fmt.Errorf("%w: client %s", db.ErrNotFound, client.ID)
	}
	r.writes++
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(_ context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[clientID]; !ok {
		return fmt.Errorf("%w: client %s", db.ErrNotFound, clientID)
	}
	r.writes++
	delete(r.clients, clientID)
	return nil
}

type fakeProcessRepo struct {
	mu        sync.Mutex
	processes map[string]*models.Process
	documents map[string][]*models.ProcessDocument
	chats     map[string][]*models.ChatMessage
	writes    int
	nextID    int
}

func newFakeProcessRepo() *fakeProcessRepo {
	return &fakeProcessRepo{
		processes: map[string]*models.Process{},
		documents: map[string][]*models.ProcessDocument{},
		chats:     map[string][]*models.ChatMessage{},
	}
}

func (r *fakeProcessRepo) Create(_ context.Context, p *models.Process) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if p.ID == "" {
		r.nextID++
		p.ID = fmt.Sprintf("process-%d", r.nextID)
	}
	cp := *p
	r.processes[p.ID] = &cp
	return p.ID, nil
}

func (r *fakeProcessRepo) GetByID(_ context.Context, processID string) (*models.Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.processes[processID]
	if !ok {
		return nil, fmt.Errorf("%w: process %s", db.ErrNotFound, processID)
	}
	cp := *p
	cp.CollaboratorIDs = append([]string(nil), p.CollaboratorIDs...)
	cp.Movements = append([]models.Movement(nil), p.Movements...)
	return &cp, nil
}

func (r *fakeProcessRepo) ListByOffice(_ context.Context, officeID string) ([]*models.Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Process
	for _, p := range r.processes {
		if p.OfficeID == officeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProcessRepo) Update(_ context.Context, p *models.Process) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.processes[p.ID]; !ok {
		return fmt.Errorf("%w: process %s", db.ErrNotFound, p.ID)
	}
	r.writes++
	cp := *p
	r.processes[p.ID] = &cp
	return nil
}

func (r *fakeProcessRepo) Delete(_ context.Context, processID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.processes[processID]; !ok {
		return fmt.Errorf("%w: process %s", db.ErrNotFound, processID)
	}
	r.writes++
	delete(r.processes, processID)
	return nil
}

// AppendMovement mirrors ArrayUnion: an element deep-equal to an
// existing one is not appended.
func (r *fakeProcessRepo) AppendMovement(_ context.Context, processID string, m models.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.processes[processID]
	if !ok {
		return fmt.Errorf("%w: process %s", db.ErrNotFound, processID)
	}
	r.writes++
	for _, existing := range p.Movements {
		if reflect.DeepEqual(existing, m) {
			return nil
		}
	}
	p.Movements = append(p.Movements, m)
	return nil
}

func (r *fakeProcessRepo) AddCollaborator(_ context.Context, processID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.processes[processID]
	if !ok {
		return fmt.Errorf("%w: process %s", db.ErrNotFound, processID)
	}
	r.writes++
	for _, id := range p.CollaboratorIDs {
		if id == userID {
			return nil
		}
	}
	p.CollaboratorIDs = append(p.CollaboratorIDs, userID)
	return nil
}

func (r *fakeProcessRepo) RemoveCollaborator(_ context.Context, processID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.processes[processID]
	if !ok {
		return fmt.Errorf("%w: process %s", db.ErrNotFound, processID)
	}
	r.writes++
	out := p.CollaboratorIDs[:0]
	for _, id := range p.CollaboratorIDs {
		if id != userID {
			out = append(out, id)
		}
	}
	p.CollaboratorIDs = out
	return nil
}

func (r *fakeProcessRepo) AddDocument(_ context.Context, processID string, doc *models.ProcessDocument) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	doc.ID = fmt.Sprintf("doc-%d", len(r.documents[processID])+1)
	r.documents[processID] = append(r.documents[processID], doc)
	return doc.ID, nil
}

func (r *fakeProcessRepo) ListDocuments(_ context.Context, processID string) ([]*models.ProcessDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.ProcessDocument(nil), r.documents[processID]...), nil
}

func (r *fakeProcessRepo) AddChatMessage(_ context.Context, processID string, msg *models.ChatMessage) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	msg.ID = fmt.Sprintf("msg-%d", len(r.chats[processID])+1)
	r.chats[processID] = append(r.chats[processID], msg)
	return msg.ID, nil
}

func (r *fakeProcessRepo) ListChatMessages(_ context.Context, processID string) ([]*models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.ChatMessage(nil), r.chats[processID]...), nil
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]*models.Event
	writes int
	nextID int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*models.Event{}}
}

func (r *fakeEventRepo) Create(_ context.Context, e *models.Event) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if e.ID == "" {
		r.nextID++
		e.ID = fmt.Sprintf("event-%d", r.nextID)
	}
	cp := *e
	r.events[e.ID] = &cp
	return e.ID, nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, eventID string) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[eventID]
	if !ok {
		return nil, fmt.Errorf("%w: event %s", db.ErrNotFound, eventID)
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEventRepo) ListByOffice(_ context.Context, officeID string) ([]*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Event
	for _, e := range r.events {
		if e.OfficeID == officeID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Update(_ context.Context, e *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[e.ID]; !ok {
		return fmt.Errorf("%w: event %s", db.ErrNotFound, e.ID)
	}
	r.writes++
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[eventID]; !ok {
		return fmt.Errorf("%w: event %s", db.ErrNotFound, eventID)
	}
	r.writes++
	delete(r.events, eventID)
	return nil
}

type fakeFinancialRepo struct {
	mu     sync.Mutex
	tasks  map[string]*models.FinancialTask
	writes int
	nextID int
}

func newFakeFinancialRepo() *fakeFinancialRepo {
	return &fakeFinancialRepo{tasks: map[string]*models.FinancialTask{}}
}

func (r *fakeFinancialRepo) Create(_ context.Context, t *models.FinancialTask) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if t.ID == "" {
		r.nextID++
		t.ID = fmt.Sprintf("task-%d", r.nextID)
	}
	cp := *t
	r.tasks[t.ID] = &cp
	return t.ID, nil
}

func (r *fakeFinancialRepo) GetByID(_ context.Context, taskID string) (*models.FinancialTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok {
		return nil, fmt.Errorf("%w: task %s", db.ErrNotFound, taskID)
	}
	cp := *t
	return &cp, nil
}

func (r *fakeFinancialRepo) ListByOffice(_ context.Context, officeID string) ([]*models.FinancialTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.FinancialTask
	for _, t := range r.tasks {
		if t.OfficeID == officeID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFinancialRepo) Update(_ context.Context, t *models.FinancialTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return fmt.Errorf("%w: task %s", db.ErrNotFound, t.ID)
	}
	r.writes++
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeFinancialRepo) Delete(_ context.Context, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[taskID]; !ok {
		return fmt.Errorf("%w: task %s", db.ErrNotFound, taskID)
	}
	r.writes++
	delete(r.tasks, taskID)
	return nil
}

type fakeTemplateRepo struct {
	mu        sync.Mutex
	templates map[string]*models.DocumentTemplate
	writes    int
	nextID    int
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: map[string]*models.DocumentTemplate{}}
}

func (r *fakeTemplateRepo) Create(_ context.Context, tpl *models.DocumentTemplate) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if tpl.ID == "" {
		r.nextID++
		tpl.ID = fmt.Sprintf("template-%d", r.nextID)
	}
	cp := *tpl
	r.templates[tpl.ID] = &cp
	return tpl.ID, nil
}

func (r *fakeTemplateRepo) GetByID(_ context.Context, templateID string) (*models.DocumentTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tpl, ok := r.templates[templateID]
	if !ok {
		return nil, fmt.Errorf("%w: template %s", db.ErrNotFound, templateID)
	}
	cp := *tpl
	return &cp, nil
}

func (r *fakeTemplateRepo) ListByOffice(_ context.Context, officeID string) ([]*models.DocumentTemplate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.DocumentTemplate
	for _, tpl := range r.templates {
		if tpl.OfficeID == officeID {
			cp := *tpl
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, tpl *models.DocumentTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[tpl.ID]; !ok {
		return fmt.Errorf("%w: template %s", db.ErrNotFound, tpl.ID)
	}
	r.writes++
	cp := *tpl
	r.templates[tpl.ID] = &cp
	return nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, templateID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.templates[templateID]; !ok {
		return fmt.Errorf("%w: template %s", db.ErrNotFound, templateID)
	}
	r.writes++
	delete(r.templates, templateID)
	return nil
}

type fakeContactRepo struct {
	mu       sync.Mutex
	requests map[string]*models.ContactRequest
	writes   int
	nextID   int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{requests: map[string]*models.ContactRequest{}}
}

func (r *fakeContactRepo) Create(_ context.Context, req *models.ContactRequest) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if req.ID == "" {
		r.nextID++
		req.ID = fmt.Sprintf("contact-%d", r.nextID)
	}
	cp := *req
	r.requests[req.ID] = &cp
	return req.ID, nil
}

func (r *fakeContactRepo) GetByID(_ context.Context, requestID string) (*models.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cr, ok := r.requests[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: contact request %s", db.ErrNotFound, requestID)
	}
	cp := *cr
	return &cp, nil
}

func (r *fakeContactRepo) ListByOffice(_ context.Context, officeID string) ([]*models.ContactRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.ContactRequest
	for _, cr := range r.requests {
		if cr.OfficeID == officeID {
			cp := *cr
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) UpdateStatus(_ context.Context, requestID string, status models.ContactRequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cr, ok := r.requests[requestID]
	if !ok {
		return fmt.Errorf("%w: contact request %s", db.ErrNotFound, requestID)
	}
	r.writes++
	cr.Status = status
	return nil
}

// fakeAuthProvider is an in-memory identity provider.
type fakeAuthProvider struct {
	mu       sync.Mutex
	byEmail  map[string]string
	nextID   int
	created  []string
	deleted  []string
	failNext bool
}

func newFakeAuthProvider() *fakeAuthProvider {
	return &fakeAuthProvider{byEmail: map[string]string{}}
}

func (p *fakeAuthProvider) CreateUser(_ context.Context, email, password, displayName string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failNext {
		p.failNext = false
		return "", fmt.Errorf("auth unavailable")
	}
	if _, ok := p.byEmail[email]; ok {
		return "", fmt.Errorf("email already exists")
	}
	p.nextID++
	uid := fmt.Sprintf("uid-%d", p.nextID)
	p.byEmail[email] = uid
	p.created = append(p.created, uid)
	return uid, nil
}

func (p *fakeAuthProvider) LookupByEmail(_ context.Context, email string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	uid, ok := p.byEmail[email]
	if !ok {
		return "", fmt.Errorf("%w: email %s", db.ErrNotFound, email)
	}
	return uid, nil
}

func (p *fakeAuthProvider) UpdatePassword(_ context.Context, uid, newPassword string) error {
	return nil
}

func (p *fakeAuthProvider) DeleteUser(_ context.Context, uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleted = append(p.deleted, uid)
	for email, id := range p.byEmail {
		if id == uid {
			delete(p.byEmail, email)
		}
	}
	return nil
}

// fakeUploader records uploads without touching object storage.
type fakeUploader struct {
	mu    sync.Mutex
	paths []string
	fail  bool
}

func (u *fakeUploader) Upload(_ context.Context, path, contentType string, r io.Reader) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.fail {
		return "", fmt.Errorf("bucket unavailable")
	}
	u.paths = append(u.paths, path)
	return "https://storage.example.com/" + path, nil
}

// fakeMailer records invite notifications.
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (m *fakeMailer) SendInvite(_ context.Context, toEmail, toName, officeName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("sendgrid unavailable")
	}
	m.sent = append(m.sent, toEmail)
	return nil
}

// fakeGenerator returns a canned completion and records prompts.
type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
	keys    []string
}

func (g *fakeGenerator) Generate(_ context.Context, apiKey, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	g.prompts = append(g.prompts, prompt)
	g.keys = append(g.keys, apiKey)
	return g.reply, nil
}

// seedUser inserts a user document directly into the fake store.
func seedUser(users *fakeUserRepo, uid, role, officeID string) {
	users.users[uid] = &models.User{
		ID:       uid,
		FullName: "User " + uid,
		Email:    uid + "@example.com",
		Role:     authz.Role(role),
		OfficeID: officeID,
	}
}

func testResolver(users *fakeUserRepo) *IdentityResolver {
	return NewIdentityResolver(users, nil, zap.NewNop())
}
