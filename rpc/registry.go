package rpc

import "strings"

// ResolvePeers builds the candidate peer set from a comma-separated service
// list, excluding every entry that contains the local service's marker.
// Purely textual; safe to call once at startup and reuse for the process
// lifetime since the configuration does not change.
func ResolvePeers(services string, localMarker string) []Peer {
	if services == "" {
		return []Peer{}
	}

	peers := make([]Peer, 0)
	for _, entry := range strings.Split(services, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if localMarker != "" && strings.Contains(entry, localMarker) {
			continue
		}
		peers = append(peers, Peer(entry))
	}
	return peers
}
