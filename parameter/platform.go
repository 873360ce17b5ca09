package parameter

import "time"

// Raw Event Queue
const (
	// RawQueueSize must be a power of 2
	RawQueueSize = 256

	// RawQueueMask for index wrapping
	RawQueueMask = RawQueueSize - 1
)

// Bridge
const (
	// BridgeReadLimit bounds a single websocket message
	BridgeReadLimit = 4096

	// BridgePongWait is the read deadline extended on every pong
	BridgePongWait = 60 * time.Second

	// BridgePingPeriod must be shorter than BridgePongWait
	BridgePingPeriod = (BridgePongWait * 9) / 10

	// BridgeWriteWait bounds control frame writes
	BridgeWriteWait = 10 * time.Second
)

// Host
const (
	// HostFrameInterval paces the demo poll/render loop
	HostFrameInterval = 16 * time.Millisecond

	// HostEventLogSize is the number of translated events kept on screen
	HostEventLogSize = 12
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "touchport.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Host cell geometry, converting terminal cells to touch points so swipe
// thresholds keep their physical scale
const (
	HostCellWidth  = 8
	HostCellHeight = 16
)

// HostMaxPollsPerFrame bounds translator polls drained per frame
const HostMaxPollsPerFrame = 64
