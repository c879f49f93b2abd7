// Package rules defines the skill rule set and loads it from disk.
//
// A rule file maps skill names to rule definitions:
//
//	{
//	  "version": "1.0",
//	  "skills": {
//	    "deploy-guard": {
//	      "type": "guardrail",
//	      "enforcement": "block",
//	      "priority": "critical",
//	      "promptTriggers": {
//	        "keywords": ["deploy production"],
//	        "intentPatterns": ["(ship|release).*prod"]
//	      }
//	    }
//	  }
//	}
//
// Skill order in the file is significant: it decides the order in which
// matches are listed. Go maps do not keep insertion order, so RuleSet holds
// an ordered slice and decodes the skills object token by token.
//
// A YAML document with the same shape is accepted as well.
package rules
