package handlers

import (
	"sync"
)

// ClientManager tracks the live connection of each logged-in player. A player
// has at most one.
type ClientManager struct {
	clients map[string]*ClientHandler // Map PlayerID to ClientHandler
	mutex   sync.RWMutex
}

// NewClientManager creates a new client manager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[string]*ClientHandler),
	}
}

// AddClient runs setup and, if it succeeds, registers handler for playerID.
// It returns the handler it replaced, if any. setup runs under the manager
// lock so it cannot interleave with the teardown of a replaced connection.
func (cm *ClientManager) AddClient(playerID string, handler *ClientHandler, setup func() error) (*ClientHandler, error) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	if setup != nil {
		if err := setup(); err != nil {
			return nil, err
		}
	}
	previous := cm.clients[playerID]
	cm.clients[playerID] = handler
	return previous, nil
}

// RemoveClient unregisters playerID if handler is still its current
// connection, running teardown under the lock, and reports whether it did.
func (cm *ClientManager) RemoveClient(playerID string, handler *ClientHandler, teardown func()) bool {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	if cm.clients[playerID] != handler {
		return false
	}
	delete(cm.clients, playerID)
	if teardown != nil {
		teardown()
	}
	return true
}

// Count returns the number of connected players.
func (cm *ClientManager) Count() int {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()
	return len(cm.clients)
}

// CloseAll disconnects every client. Used on shutdown.
func (cm *ClientManager) CloseAll() {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	for _, client := range cm.clients {
		client.conn.Disconnect()
	}
}
