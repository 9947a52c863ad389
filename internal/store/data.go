package store

import "github.com/anilkumarravuri/portfolio-api/internal/types"

// Seed data for the portfolio. These functions are the only place the
// literal content lives; everything else reads it through the stores.

// Summary constants surfaced by /api/profile/summary. They are maintained by
// hand alongside the experience entries rather than derived from them.
const (
	summaryYearsExperience   = 7
	summaryDataPowerVersions = "v6 – v10"
)

func seedProfile() types.Profile {
	return types.Profile{
		Name:    "Anil Kumar Ravuri",
		Title:   "Sr. IT Systems Engineer",
		Tagline: "IBM DataPower & API Connect Specialist",
		Bio: []string{
			"Senior IT Systems Engineer with 7+ years of hands-on expertise in IBM DataPower Gateways and IBM API Connect, specializing in designing, securing, and optimizing enterprise API infrastructure at scale.",
			"From configuring Multi-Protocol Gateways and Web Service Proxies to implementing OAuth 2.0, SAML, JWT, and mutual TLS — I build the critical security layer that healthcare enterprises depend on.",
			"Currently leading API platform engineering at Florida Blue (BCBS Florida), managing production deployments and platform upgrades across a complex, high-availability environment.",
		},
		Email:     "anilkumar80459@gmail.com",
		Phone:     "(510) 298-7126",
		Location:  "Jacksonville, FL",
		Available: true,
		Skills: []types.Skill{
			{Name: "IBM DataPower Gateway", Category: "API & Middleware"},
			{Name: "IBM API Connect (APIC)", Category: "API & Middleware"},
			{Name: "Multi-Protocol Gateway", Category: "API & Middleware"},
			{Name: "Web Service Proxy", Category: "API & Middleware"},
			{Name: "WebSphere MQ", Category: "API & Middleware"},
			{Name: "Tomcat", Category: "API & Middleware"},
			{Name: "IBM WebSphere", Category: "API & Middleware"},
			{Name: "OAuth 2.0", Category: "Security & Cryptography"},
			{Name: "JWT", Category: "Security & Cryptography"},
			{Name: "SAML", Category: "Security & Cryptography"},
			{Name: "TLS 1.2", Category: "Security & Cryptography"},
			{Name: "Mutual TLS", Category: "Security & Cryptography"},
			{Name: "X.509 Certificates", Category: "Security & Cryptography"},
			{Name: "OpenID Connect", Category: "Security & Cryptography"},
			{Name: "Kerberos", Category: "Security & Cryptography"},
			{Name: "AAA Policies", Category: "Security & Cryptography"},
			{Name: "PKI", Category: "Security & Cryptography"},
			{Name: "GatewayScript / JS", Category: "Languages & Web"},
			{Name: "XSLT", Category: "Languages & Web"},
			{Name: "XPath / XQuery", Category: "Languages & Web"},
			{Name: "XML / JSON / YAML", Category: "Languages & Web"},
			{Name: "SOAP / WSDL", Category: "Languages & Web"},
			{Name: "REST / OpenAPI", Category: "Languages & Web"},
			{Name: "OpenShift", Category: "Infrastructure & Ops"},
			{Name: "Cloud Pak for Integration", Category: "Infrastructure & Ops"},
			{Name: "LDAP / Active Directory", Category: "Infrastructure & Ops"},
			{Name: "Splunk", Category: "Infrastructure & Ops"},
			{Name: "Elastic Search", Category: "Infrastructure & Ops"},
			{Name: "Jenkins", Category: "Infrastructure & Ops"},
			{Name: "Git / Maven", Category: "Infrastructure & Ops"},
			{Name: "Linux / UNIX", Category: "Infrastructure & Ops"},
			{Name: "Citrix NetScaler", Category: "Infrastructure & Ops"},
			{Name: "IBM DB2", Category: "Databases"},
			{Name: "Oracle Directory Server", Category: "Databases"},
			{Name: "LDAP", Category: "Databases"},
			{Name: "Active Directory", Category: "Databases"},
			{Name: "SoapUI", Category: "Tools & Hardware"},
			{Name: "Altova XMLSpy", Category: "Tools & Hardware"},
			{Name: "WinSCP / PuTTY", Category: "Tools & Hardware"},
			{Name: "DataPower Ops Dashboard", Category: "Tools & Hardware"},
			{Name: "XI52 / XB62 / IDG", Category: "Tools & Hardware"},
			{Name: "CA Single Sign-On", Category: "Tools & Hardware"},
		},
		Experience: []types.Experience{
			{
				ID:       "job1",
				Role:     "Sr. IT Systems Engineer",
				Company:  "Blue Cross and Blue Shield of Florida (Florida Blue)",
				Duration: "January 2022 — Present",
				Location: "Jacksonville, FL",
				Technologies: []string{
					"IBM DataPower", "IBM API Connect", "OpenShift", "GatewayScript",
					"XSLT", "OAuth 2.0", "SAML", "Splunk", "MQ",
				},
				Responsibilities: []string{
					"IBM API Connect V10 administration — APIM/CMC upgrades, portal patches, and cluster configuration.",
					"Installation and configuration of DataPower Appliances: XI52, XB62, and IDG models.",
					"Defined and built standalone APIs and API definitions using YAML/OpenAPI Specification.",
					"Configured developer portals, organizations, catalogs, runtime servers in API Connect.",
					"Implemented Multi-Protocol Gateways for secure RESTful API proxying and MQ integration.",
					"Built AAA policies using GatewayScript, XSLT/XQuery for authentication, authorization, and auditing.",
					"Implemented OAuth 2.0, JWE, JOSE, digital signatures, and encryption/decryption workflows.",
					"Managed cryptographic objects — certificates, private keys, CAs — using DataPower Crypto tools.",
					"Executed firmware upgrades (v6–v10), secure backups/restores, and cryptographic secret rotation.",
					"Configured load balancers, TLS client/server profiles, and mutual TLS for secure backends.",
					"Participated in multiple Disaster Recovery exercises and production deployments.",
					"Set up Splunk log forwarding and built monitoring dashboards via DataPower Operations Dashboard.",
					"Implemented SSO using SAML with DataPower MPGWs and CA Single Sign-On integration.",
					"Applied web application security defenses: SQL injection, XSS, cookie security, session management.",
				},
			},
			{
				ID:       "job2",
				Role:     "IT Systems Engineer",
				Company:  "Blue Cross and Blue Shield of Florida (Florida Blue)",
				Duration: "August 2017 — December 2021",
				Location: "Jacksonville, FL",
				Technologies: []string{
					"IBM DataPower", "IBM API Connect", "WebSphere", "GatewayScript",
					"XSL", "XQuery", "Splunk", "MQ",
				},
				Responsibilities: []string{
					"Installation, configuration, and firmware upgrades for DataPower appliances.",
					"Worked extensively on API management console, creating and managing REST APIs.",
					"Created API documentation and performed API Connect upgrades and portal customization.",
					"Configured WSPs, MPGWs, MQ Queue Managers, XML Managers, and FSHs in DataPower.",
					"Built DataPower policies using AAA actions and multiple security protocols.",
					"Coded using GatewayScript, XSL, and XQuery for advanced data processing and transformation.",
					"Built multi-protocol gateways for diverse protocols and WebSphere MQ integration.",
					"Performed device health checks, monitoring, and report generation.",
					"Monitored transactions using Operations Dashboard and Splunk.",
					"Gathered requirements from product owners and BAs; managed deliverables for multiple releases.",
					"Configured and maintained Tomcat and WebSphere application servers.",
					"Built defensive security constructs including digital signatures, PKI, and firewalls.",
				},
			},
		},
		Education: []types.Education{
			{
				Degree:      "Master's",
				Field:       "Computer Science",
				Institution: "Troy University",
				Location:    "Alabama, USA",
				Year:        2017,
			},
			{
				Degree:      "Bachelor's",
				Field:       "Electronics & Communication Engineering",
				Institution: "Koneru Lakshmaiah University (KLU)",
				Location:    "India",
				Year:        2015,
			},
		},
	}
}

func seedCertifications() []types.Certification {
	return []types.Certification{
		{
			ID:     "cert1",
			Name:   "IBM Certified System Administrator - DataPower Gateway v7.5",
			Issuer: "IBM",
			Date:   "2019",
		},
		{
			ID:     "cert2",
			Name:   "IBM Certified Solution Advisor - API Connect v10",
			Issuer: "IBM",
			Date:   "2022",
		},
		{
			ID:     "cert3",
			Name:   "AWS Certified Cloud Practitioner",
			Issuer: "Amazon Web Services",
			Date:   "2023",
		},
	}
}

func seedBlogPosts() []types.BlogPost {
	return []types.BlogPost{
		{
			Slug:     "datapower-oauth2-guide",
			Title:    "Implementing OAuth 2.0 on IBM DataPower Gateway",
			Category: "Security",
			Excerpt:  "A practical guide to configuring OAuth 2.0 provider on IBM DataPower Gateway for enterprise API security.",
			Content: "OAuth 2.0 has become the industry standard for API authorization. In this post, I walk through the end-to-end setup of an OAuth 2.0 provider on IBM DataPower Gateway.\n\n" +
				"The first step is to create an API Security definition in your DataPower domain. This involves configuring the token endpoint, authorization endpoint, and the supported grant types. For most enterprise use cases, you will want to support both authorization code and client credentials grant types.\n\n" +
				"Next, configure the AAA (Authentication, Authorization, and Auditing) policy. The AAA policy defines how DataPower validates client credentials, authenticates resource owners, and issues tokens. You can integrate with LDAP directories, custom databases, or external identity providers.\n\n" +
				"Token management is critical. Configure token lifetimes, refresh token policies, and token revocation endpoints. DataPower supports both opaque tokens and JWT tokens, with JWT being preferred for microservices architectures where token validation needs to happen without calling back to the authorization server.\n\n" +
				"Finally, test your configuration using tools like Postman or curl. Verify that tokens are issued correctly, that scopes are enforced, and that token expiration and refresh work as expected.",
			Date:     "2024-12-15",
			Tags:     []string{"DataPower", "OAuth", "Security", "API"},
			ReadTime: 8,
		},
		{
			Slug:     "oauth-security-pitfalls",
			Title:    "OAuth 2.0 Security Pitfalls in Enterprise Gateways",
			Category: "Security",
			Excerpt:  "Common OAuth 2.0 misconfigurations I keep finding in enterprise gateway deployments, and how to avoid them.",
			Content: "OAuth 2.0 gives you a solid authorization framework, but the framework does not protect you from your own configuration. After years of reviewing gateway deployments, the same handful of pitfalls keep showing up.\n\n" +
				"The first is overly broad scopes. When every client requests a wildcard scope and every resource server accepts it, scopes stop meaning anything. Define scopes per API product, validate them at the gateway, and reject tokens that carry more privilege than the route needs.\n\n" +
				"The second is weak token validation. Accepting a JWT because its signature parses is not validation. Check the issuer, the audience, the expiry, and the algorithm. Pin the expected signing algorithm explicitly — the alg header belongs to the attacker.\n\n" +
				"Third: refresh tokens treated as harmless. A long-lived refresh token is a credential. Store it like one, rotate it on use, and revoke the family when reuse is detected.\n\n" +
				"Fourth, redirect URI validation done by prefix match. Exact-match registered redirect URIs, always. Prefix matching has been the root cause of more token leaks than any cryptographic weakness.\n\n" +
				"Finally, logging. Gateways sit in the perfect place to log authorization decisions, and in the worst place to log tokens. Log the decision, the client, and the scope — never the credential itself.",
			Date:     "2024-11-10",
			Tags:     []string{"OAuth", "Security", "API Gateway"},
			ReadTime: 9,
		},
		{
			Slug:     "api-connect-v10-migration",
			Title:    "Migrating from API Connect v5 to v10: Lessons Learned",
			Category: "Migration",
			Excerpt:  "Key insights and strategies from migrating enterprise APIs across major API Connect versions.",
			Content: "Migrating between major versions of IBM API Connect is a significant undertaking that requires careful planning and execution. Having led the migration from v5 to v10 at Florida Blue, here are the lessons I learned.\n\n" +
				"Start with a thorough inventory of your existing APIs. Document every API product, plan, subscription, and consumer organization. API Connect v10 changes how products and plans are structured, so understanding your current state is essential.\n\n" +
				"The gateway runtime changed significantly between v5 and v10. If you have custom gateway extensions or DataPower policies, they will need to be reviewed and potentially rewritten. GatewayScript policies generally port well, but XSLT policies may need updates due to changes in the context variables.\n\n" +
				"Testing is paramount. Set up a parallel environment running v10 alongside your existing v5 environment. Migrate APIs in phases, starting with low-risk, internal APIs before moving to customer-facing ones. Use API testing frameworks to validate that responses match between the old and new environments.\n\n" +
				"Don't underestimate the impact on your CI/CD pipeline. The apic CLI toolkit changed significantly in v10, and your deployment scripts will need updates.",
			Date:     "2024-10-20",
			Tags:     []string{"API Connect", "Migration", "Enterprise"},
			ReadTime: 10,
		},
		{
			Slug:     "mutual-tls-datapower",
			Title:    "Securing APIs with Mutual TLS on DataPower",
			Category: "Security",
			Excerpt:  "How to implement certificate-based mutual authentication for zero-trust API security.",
			Content: "Mutual TLS (mTLS) provides the strongest form of transport-level security for APIs. Unlike standard TLS where only the server presents a certificate, mTLS requires both the client and server to authenticate via certificates.\n\n" +
				"On IBM DataPower, implementing mTLS involves configuring the SSL/TLS profile to require client certificates. Create a Crypto Validation Credential that specifies which Certificate Authorities are trusted for client certificate validation.\n\n" +
				"The key challenge in enterprise environments is certificate lifecycle management. Certificates expire, get revoked, and need rotation. Implement certificate monitoring and alerting so that expiring certificates are caught before they cause outages.\n\n" +
				"DataPower can extract information from client certificates and use it for authorization decisions. For example, you can extract the Common Name (CN) or Subject Alternative Name (SAN) and use it to determine which APIs the client is authorized to access.\n\n" +
				"Combining mTLS with OAuth 2.0 provides defense in depth. Use mTLS for transport security and OAuth for application-level authorization.",
			Date:     "2024-08-05",
			Tags:     []string{"Security", "TLS", "DataPower", "Zero Trust"},
			ReadTime: 7,
		},
	}
}
