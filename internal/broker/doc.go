// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package broker speaks the broker's JSON-over-WebSocket API.
//
// Outbound requests are plain structs carrying a req_id. Inbound frames are
// decoded at the boundary into one of [AuthorizeResponse],
// [AccountListResponse] or [BalanceResponse], selected by msg_type. Frames
// that are not JSON fail with [ErrMalformedMessage]; frames with an unknown
// msg_type or without the expected payload fail with [ErrUnexpectedMessage].
package broker
