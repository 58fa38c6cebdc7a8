package content

import "context"

// Clients returns a copy of every client.
func (s *Store) Clients() []Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Client{}, s.clients...)
}

func (s *Store) GetClient(id string) (Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.clientIndex(id); idx >= 0 {
		return s.clients[idx], nil
	}
	return Client{}, ErrNotFound
}

func (s *Store) AddClient(ctx context.Context, nc NewClient) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	client := Client{
		ID:           s.newID(),
		Name:         nc.Name,
		Type:         nc.Type,
		Status:       nc.Status,
		ContactEmail: nc.ContactEmail,
		Description:  nc.Description,
		Branding:     nc.Branding,
		UserID:       s.actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.clients = append(s.clients, client)
	s.record(EntityClient, added, client.ID, client.Name)

	if err := s.persist(ctx, colClients, colActivities); err != nil {
		return Client{}, err
	}
	return client, nil
}

// UpdateClient merges uc into the client. An unknown id is a no-op.
func (s *Store) UpdateClient(ctx context.Context, id string, uc UpdateClient) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.clientIndex(id)
	if idx < 0 {
		return Client{}, nil
	}
	client := s.clients[idx]
	name := client.Name // activities name the record as it was before the update
	uc.apply(&client)
	client.UpdatedAt = s.touch(client.UpdatedAt)
	s.clients[idx] = client
	s.record(EntityClient, updated, id, name)

	if err := s.persist(ctx, colClients, colActivities); err != nil {
		return Client{}, err
	}
	return client, nil
}

// DeleteClient removes the client. An unknown id is a no-op.
func (s *Store) DeleteClient(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.clientIndex(id)
	if idx < 0 {
		return nil
	}
	client := s.clients[idx]
	s.clients = removeAt(s.clients, idx)
	s.record(EntityClient, deleted, id, client.Name)
	return s.persist(ctx, colClients, colActivities)
}

func (s *Store) clientIndex(id string) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

// removeAt returns a new slice without the element at idx.
func removeAt[T any](list []T, idx int) []T {
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...)
}
