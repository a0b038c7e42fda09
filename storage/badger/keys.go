package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/paranuara/core"
)

// Key prefixes for different data types
const (
	companyPrefix       = "company"
	personPrefix        = "person"
	personCompanyPrefix = "personco"
)

// makeCompanyKey generates a key for a company by natural id.
func makeCompanyKey(id core.CompanyID) []byte {
	return []byte(fmt.Sprintf("%s:%d", companyPrefix, id))
}

// makePersonKey generates a key for a person by natural id.
func makePersonKey(id core.PersonID) []byte {
	return []byte(fmt.Sprintf("%s:%d", personPrefix, id))
}

// makePersonCompanyKey generates a composite key for the employer index.
// Format: prefix:companyID:personID
func makePersonCompanyKey(companyID core.CompanyID, personID core.PersonID) []byte {
	prefix := personCompanyPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for companyID + 8 bytes for personID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(companyID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(personID))
	return buf
}

// makePartialPersonCompanyKey generates a partial key for employer queries.
// Format: prefix:companyID
func makePartialPersonCompanyKey(companyID core.CompanyID) []byte {
	prefix := personCompanyPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(companyID))
	return buf
}
