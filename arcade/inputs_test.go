package arcade

import "testing"

func TestInputLatchesBit3AlwaysSet(t *testing.T) {
	in := NewInputLatches()
	if in.ReadINP1()&(1<<3) == 0 {
		t.Errorf("INP1 bit 3 not set by default")
	}
}

func TestInputLatchesSetClear(t *testing.T) {
	in := NewInputLatches()

	in.SetPlayer1Shot(true)
	if in.ReadINP1()&inp1Shot == 0 {
		t.Errorf("INP1 shot bit not set after SetPlayer1Shot(true)")
	}

	in.SetPlayer1Shot(false)
	if in.ReadINP1()&inp1Shot != 0 {
		t.Errorf("INP1 shot bit still set after SetPlayer1Shot(false)")
	}
}

func TestInputLatchesTwoPlayerMirroring(t *testing.T) {
	in := NewInputLatches()

	in.SetPlayer2Left(true)
	if in.ReadINP2()&inp2Left == 0 {
		t.Errorf("INP2 left bit not set after SetPlayer2Left(true)")
	}
	if in.ReadINP1()&inp1Left != 0 {
		t.Errorf("SetPlayer2Left unexpectedly touched INP1")
	}
}

func TestInputLatchesCreditAndStart(t *testing.T) {
	in := NewInputLatches()
	in.SetCredit(true)
	in.SetStart1P(true)
	in.SetStart2P(true)

	got := in.ReadINP1()
	if got&inp1Credit == 0 || got&inp1Start1P == 0 || got&inp1Start2P == 0 {
		t.Errorf("INP1 = 0x%02X, want credit/start1/start2 bits all set", got)
	}
}
