package sip

import (
	"braces.dev/errtrace"
	"github.com/pion/sdp/v3"
)

type pionSDP struct{}

// PionSDP is the default [SDPParser] backed by github.com/pion/sdp.
var PionSDP SDPParser = pionSDP{}

func (pionSDP) ParseSDP(body string) (*sdp.SessionDescription, error) {
	sd := &sdp.SessionDescription{}
	if err := sd.Unmarshal([]byte(body)); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return sd, nil
}
