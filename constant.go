package iso8583

// DefaultCommonFields is the built-in catalog of the Common main message
// family. Field 1 is the bitmap extension flag and has no entry.
var DefaultCommonFields = []FieldDefinition{
	{Number: 2, Representation: "n ..19", Name: "Primary Account Number (PAN)"},
	{Number: 3, Representation: "n 6", Name: "Processing Code"},
	{Number: 4, Representation: "n 12", Name: "Amount, Transaction"},
	{Number: 5, Representation: "n 12", Name: "Amount, Settlement"},
	{Number: 6, Representation: "n 12", Name: "Amount, Cardholder Billing"},
	{Number: 7, Representation: "n 10", Name: "Transmission Date & Time (MMDDhhmmss)"},
	{Number: 8, Representation: "n 8", Name: "Amount, Cardholder Billing Fee"},
	{Number: 9, Representation: "n 8", Name: "Conversion Rate, Settlement"},
	{Number: 10, Representation: "n 8", Name: "Conversion Rate, Cardholder Billing"},
	{Number: 11, Representation: "n 6", Name: "System Trace Audit Number (STAN)"},
	{Number: 12, Representation: "n 6", Name: "Time, Local Transaction (hhmmss)"},
	{Number: 13, Representation: "n 4", Name: "Date, Local Transaction (MMDD)"},
	{Number: 14, Representation: "n 4", Name: "Date, Expiration"},
	{Number: 15, Representation: "n 4", Name: "Date, Settlement"},
	{Number: 16, Representation: "n 4", Name: "Date, Conversion"},
	{Number: 17, Representation: "n 4", Name: "Date, Capture"},
	{Number: 18, Representation: "n 4", Name: "Merchant Type"},
	{Number: 19, Representation: "n 3", Name: "Acquiring Institution Country Code"},
	{Number: 20, Representation: "n 3", Name: "PAN Extended, Country Code"},
	{Number: 21, Representation: "n 3", Name: "Forwarding Institution Country Code"},
	{Number: 22, Representation: "n 3", Name: "Point of Service Entry Mode"},
	{Number: 23, Representation: "n 3", Name: "Application PAN Sequence Number"},
	{Number: 24, Representation: "n 3", Name: "Function Code / Network International Identifier"},
	{Number: 25, Representation: "n 2", Name: "Point of Service Condition Code"},
	{Number: 26, Representation: "n 2", Name: "Point of Service Capture Code"},
	{Number: 27, Representation: "n 1", Name: "Authorizing Identification Response Length"},
	{Number: 28, Representation: "x+n 8", Name: "Amount, Transaction Fee"},
	{Number: 29, Representation: "x+n 8", Name: "Amount, Settlement Fee"},
	{Number: 30, Representation: "x+n 8", Name: "Amount, Transaction Processing Fee"},
	{Number: 31, Representation: "x+n 8", Name: "Amount, Settlement Processing Fee"},
	{Number: 32, Representation: "an ..11", Name: "Acquiring Institution Identification Code"},
	{Number: 33, Representation: "n ..11", Name: "Forwarding Institution Identification Code"},
	{Number: 34, Representation: "ns ..28", Name: "Primary Account Number, Extended"},
	{Number: 35, Representation: "z ..37", Name: "Track 2 Data"},
	{Number: 36, Representation: "n ...104", Name: "Track 3 Data"},
	{Number: 37, Representation: "an 12", Name: "Retrieval Reference Number"},
	{Number: 38, Representation: "an 6", Name: "Authorization Identification Response"},
	{Number: 39, Representation: "an 2", Name: "Response Code"},
	{Number: 40, Representation: "an 3", Name: "Service Restriction Code"},
	{Number: 41, Representation: "ans 8", Name: "Card Acceptor Terminal Identification"},
	{Number: 42, Representation: "ans 15", Name: "Card Acceptor Identification Code"},
	{Number: 43, Representation: "ans 40", Name: "Card Acceptor Name/Location"},
	{Number: 44, Representation: "an ..25", Name: "Additional Response Data"},
	{Number: 45, Representation: "an ..76", Name: "Track 1 Data"},
	{Number: 46, Representation: "an ...999", Name: "Additional Data - ISO"},
	{Number: 47, Representation: "an ...999", Name: "Additional Data - National"},
	{Number: 48, Representation: "an ...999", Name: "Additional Data - Private"},
	{Number: 49, Representation: "an 3", Name: "Currency Code, Transaction"},
	{Number: 50, Representation: "an 3", Name: "Currency Code, Settlement"},
	{Number: 51, Representation: "an 3", Name: "Currency Code, Cardholder Billing"},
	{Number: 52, Representation: "b 64", Name: "Personal Identification Number (PIN) Data"},
	{Number: 53, Representation: "n 16", Name: "Security Related Control Information"},
	{Number: 54, Representation: "an ...120", Name: "Additional Amounts"},
	{Number: 55, Representation: "ans ...999", Name: "ICC Data (EMV)"},
	{Number: 56, Representation: "ans ...999", Name: "Reserved ISO"},
	{Number: 57, Representation: "ans ...999", Name: "Reserved National"},
	{Number: 58, Representation: "ans ...999", Name: "Reserved National"},
	{Number: 59, Representation: "ans ...999", Name: "Reserved National"},
	{Number: 60, Representation: "ans ...999", Name: "Reserved Private"},
	{Number: 61, Representation: "ans ...999", Name: "Reserved Private (DF61 sub-message)"},
	{Number: 62, Representation: "ans ...999", Name: "Reserved Private"},
	{Number: 63, Representation: "ans ...999", Name: "Reserved Private"},
	{Number: 64, Representation: "b 64", Name: "Message Authentication Code (MAC)"},

	// Secondary bitmap
	{Number: 65, Representation: "b 64", Name: "Extended Bitmap"},
	{Number: 66, Representation: "n 1", Name: "Settlement Code"},
	{Number: 67, Representation: "n 2", Name: "Extended Payment Code"},
	{Number: 68, Representation: "n 3", Name: "Receiving Institution Country Code"},
	{Number: 69, Representation: "n 3", Name: "Settlement Institution Country Code"},
	{Number: 70, Representation: "n 3", Name: "Network Management Information Code"},
	{Number: 71, Representation: "n 4", Name: "Message Number"},
	{Number: 72, Representation: "n 4", Name: "Message Number, Last"},
	{Number: 73, Representation: "n 6", Name: "Date, Action (YYYYMMDD)"},
	{Number: 74, Representation: "n 10", Name: "Credits, Number"},
	{Number: 75, Representation: "n 10", Name: "Credits, Reversal Number"},
	{Number: 76, Representation: "n 10", Name: "Debits, Number"},
	{Number: 77, Representation: "n 10", Name: "Debits, Reversal Number"},
	{Number: 78, Representation: "n 10", Name: "Transfer, Number"},
	{Number: 79, Representation: "n 10", Name: "Transfer, Reversal Number"},
	{Number: 80, Representation: "n 10", Name: "Inquiries, Number"},
	{Number: 81, Representation: "n 10", Name: "Authorizations, Number"},
	{Number: 82, Representation: "n 12", Name: "Credits, Processing Fee Amount"},
	{Number: 83, Representation: "n 12", Name: "Credits, Transaction Fee Amount"},
	{Number: 84, Representation: "n 12", Name: "Debits, Processing Fee Amount"},
	{Number: 85, Representation: "n 12", Name: "Debits, Transaction Fee Amount"},
	{Number: 86, Representation: "n 16", Name: "Credits, Amount"},
	{Number: 87, Representation: "n 16", Name: "Credits, Reversal Amount"},
	{Number: 88, Representation: "n 16", Name: "Debits, Amount"},
	{Number: 89, Representation: "n 16", Name: "Debits, Reversal Amount"},
	{Number: 90, Representation: "n 42", Name: "Original Data Elements"},
	{Number: 91, Representation: "an 1", Name: "File Update Code"},
	{Number: 92, Representation: "an 2", Name: "File Security Code"},
	{Number: 93, Representation: "an 5", Name: "Response Indicator"},
	{Number: 94, Representation: "an 7", Name: "Service Indicator"},
	{Number: 95, Representation: "an 42", Name: "Replacement Amounts"},
	{Number: 96, Representation: "b 64", Name: "Message Security Code"},
	{Number: 97, Representation: "x+n 16", Name: "Amount, Net Settlement"},
	{Number: 98, Representation: "ans 25", Name: "Payee"},
	{Number: 99, Representation: "n ..11", Name: "Settlement Institution Identification Code"},
	{Number: 100, Representation: "n ..11", Name: "Receiving Institution Identification Code"},
	{Number: 101, Representation: "ans ..17", Name: "File Name"},
	{Number: 102, Representation: "ans ..28", Name: "Account Identification 1"},
	{Number: 103, Representation: "ans ..28", Name: "Account Identification 2"},
	{Number: 104, Representation: "ans ...100", Name: "Transaction Description"},
	{Number: 105, Representation: "ans ...999", Name: "Reserved for ISO Use"},
	{Number: 106, Representation: "ans ...999", Name: "Reserved for ISO Use"},
	{Number: 107, Representation: "ans ...999", Name: "Reserved for ISO Use"},
	{Number: 108, Representation: "ans ...999", Name: "Reserved for ISO Use"},
	{Number: 109, Representation: "ans ...999", Name: "Reserved for ISO Use"},
	{Number: 110, Representation: "ans ...999", Name: "Reserved for ISO Use"},
	{Number: 111, Representation: "ans ...999", Name: "Reserved for ISO Use"},
	{Number: 112, Representation: "ans ...999", Name: "Reserved for National Use"},
	{Number: 113, Representation: "ans ...999", Name: "Reserved for National Use"},
	{Number: 114, Representation: "ans ...999", Name: "Reserved for National Use"},
	{Number: 115, Representation: "ans ...999", Name: "Reserved for National Use"},
	{Number: 116, Representation: "ans ...999", Name: "Reserved for National Use"},
	{Number: 117, Representation: "ans ...999", Name: "Reserved for National Use"},
	{Number: 118, Representation: "ans ...999", Name: "Reserved for National Use"},
	{Number: 119, Representation: "ans ...999", Name: "Reserved for National Use"},
	{Number: 120, Representation: "ans ...999", Name: "Reserved for Private Use"},
	{Number: 121, Representation: "ans ...999", Name: "Reserved for Private Use"},
	{Number: 122, Representation: "ans ...999", Name: "Reserved for Private Use"},
	{Number: 123, Representation: "ans ...999", Name: "Reserved for Private Use"},
	{Number: 124, Representation: "ans ...999", Name: "Reserved for Private Use"},
	{Number: 125, Representation: "ans ...999", Name: "Reserved for Private Use"},
	{Number: 126, Representation: "ans ...999", Name: "Reserved for Private Use"},
	{Number: 127, Representation: "ans ...999", Name: "Reserved for Private Use"},
	{Number: 128, Representation: "b 64", Name: "Message Authentication Code (MAC)"},
}

// DefaultDF61Fields is the built-in catalog of the DF61 sub-message carried
// in Common field 61.
var DefaultDF61Fields = []FieldDefinition{
	{Number: 3, Representation: "n 8", Name: "Processing Sequence"},
	{Number: 4, Representation: "n 3", Name: "Terminal Batch Number"},
	{Number: 8, Representation: "n 14", Name: "Transaction Date Time (YYYYMMDDhhmmss)"},
	{Number: 9, Representation: "n 8", Name: "Original Trace Number"},
	{Number: 10, Representation: "n 16", Name: "Card Physical Number"},
	{Number: 11, Representation: "n 8", Name: "Terminal Trace Number"},
	{Number: 35, Representation: "n 20", Name: "Device Serial Number"},
}

// DefaultCatalog returns a catalog holding the Common and DF61 families.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Families: []FamilyDefinition{
			{Name: FamilyCommon, Peer: PeerCommon, Fields: cloneDefinitions(DefaultCommonFields)},
			{Name: FamilyDF61, Peer: PeerCommon, Fields: cloneDefinitions(DefaultDF61Fields)},
		},
	}
}
