package payload

import (
	"bytes"
	checksum "crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

//The fixed payload is a genuine two-packet capture (a minimal TCP exchange)
//so that fixture files are real pcap files, not placeholder bytes. All inputs
//to the serialization are constants, the capture timestamps included, which
//makes the payload byte-identical across processes and the digest below
//independently verifiable by a consumer.

var captureTime = time.Unix(1700000000, 0).UTC()

var (
	once   sync.Once
	fixed  []byte
	digest string
)

func build() {
	var buf bytes.Buffer
	w := pcapgo.NewWriter(&buf)
	if err := w.WriteFileHeader(65536, layers.LinkTypeEthernet); err != nil {
		panic(fmt.Errorf("writing payload capture header failed: %w", err))
	}
	//request followed by response, one millisecond apart
	if err := writePacket(w, captureTime, "192.168.1.1", "192.168.1.5", 1234, 80); err != nil {
		panic(fmt.Errorf("serializing payload packet failed: %w", err))
	}
	if err := writePacket(w, captureTime.Add(time.Millisecond), "192.168.1.5", "192.168.1.1", 80, 1234); err != nil {
		panic(fmt.Errorf("serializing payload packet failed: %w", err))
	}
	fixed = buf.Bytes()
	sum := checksum.Sum256(fixed)
	digest = hex.EncodeToString(sum[:])
}

// Bytes returns a copy of the fixed fixture payload.
func Bytes() []byte {
	once.Do(build)
	return append([]byte(nil), fixed...)
}

// Digest returns the lowercase hex SHA256 of the fixed payload. It is
// computed once and never changes for the process lifetime.
func Digest() string {
	once.Do(build)
	return digest
}

func writePacket(w *pcapgo.Writer, captured time.Time, srcIP string, dstIP string, srcPort int, dstPort int) error {
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}

	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		DstMAC:       net.HardwareAddr{0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		SrcIP:    net.ParseIP(srcIP),
		DstIP:    net.ParseIP(dstIP),
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
	}
	tcp := &layers.TCP{
		SrcPort: layers.TCPPort(srcPort),
		DstPort: layers.TCPPort(dstPort),
	}
	tcp.SetNetworkLayerForChecksum(ip)

	if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp); err != nil {
		return err
	}

	ci := gopacket.CaptureInfo{
		Timestamp:     captured,
		CaptureLength: len(buf.Bytes()),
		Length:        len(buf.Bytes()),
	}
	return w.WritePacket(ci, buf.Bytes())
}
