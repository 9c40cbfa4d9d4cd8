package main

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"math/big"
	"net"
	"os"
	"time"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

// run writes a CA-signed development certificate for the server's TLS
// listener. Point cert_file and key_file in server.toml at the output.
func run() error {
	var (
		ipFlag   string
		certPath string
		keyPath  string
		validFor time.Duration
	)
	flag.StringVar(&ipFlag, "ip", "", "ip the certificate is issued for; loopback by default")
	flag.StringVar(&certPath, "cert", "cert.pem", "certificate output path")
	flag.StringVar(&keyPath, "key", "key.pem", "private key output path")
	flag.DurationVar(&validFor, "valid-for", 365*24*time.Hour, "certificate lifetime")
	flag.Parse()

	if !isCertMissing(certPath, keyPath) {
		return errors.New("cert exists")
	}

	subject := pkix.Name{
		Organization: []string{"ffserver development"},
	}
	notBefore := time.Now()
	notAfter := notBefore.Add(validFor)

	ca := &x509.Certificate{
		SerialNumber:          randomSerial(),
		Subject:               subject,
		NotBefore:             notBefore,
		NotAfter:              notAfter,
		IsCA:                  true,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	caPrivKey, err := rsa.GenerateKey(rand.Reader, 4096)
	if err != nil {
		return err
	}

	ips := []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback}
	if ipFlag != "" {
		ip := net.ParseIP(ipFlag)
		if ip == nil {
			return fmt.Errorf("invalid ip %q", ipFlag)
		}
		ips = []net.IP{ip}
	}
	cert := &x509.Certificate{
		SerialNumber: randomSerial(),
		Subject:      subject,
		IPAddresses:  ips,
		DNSNames:     []string{"localhost"},
		NotBefore:    notBefore,
		NotAfter:     notAfter,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	certPrivKey, err := rsa.GenerateKey(rand.Reader, 4096)
	if err != nil {
		return err
	}
	certBytes, err := x509.CreateCertificate(rand.Reader, cert, ca, &certPrivKey.PublicKey, caPrivKey)
	if err != nil {
		return err
	}

	certPEM, err := encodePEM("CERTIFICATE", certBytes)
	if err != nil {
		return err
	}
	keyPEM, err := encodePEM("RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(certPrivKey))
	if err != nil {
		return err
	}
	if err := os.WriteFile(certPath, certPEM, 0o600); err != nil {
		return err
	}
	return os.WriteFile(keyPath, keyPEM, 0o600)
}

func encodePEM(blockType string, b []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := pem.Encode(buf, &pem.Block{
		Type:  blockType,
		Bytes: b,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isCertMissing(paths ...string) bool {
	for _, p := range paths {
		_, err := os.Stat(p)
		if errors.Is(err, os.ErrNotExist) {
			return true
		}
	}
	return false
}

func randomSerial() *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	i, err := rand.Int(rand.Reader, limit)
	if err != nil {
		panic(err)
	}
	return i
}
